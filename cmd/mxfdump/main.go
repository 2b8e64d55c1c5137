package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	s377m "github.com/metarex-media/mxf-s377m"
	"github.com/metarex-media/mxf-s377m/jsonhandle"
	"github.com/metarex-media/mxf-s377m/xmlhandle"
)

// Version information - will be set at build time
var Version = "dev"

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mxfdump",
		Short: "Inspect the structural metadata of MXF files",
		Long: `mxfdump reads the SMPTE ST 377 structural layer of MXF files: partition
packs, primers, metadata sets and the random index pack. Vendor tag
mappings can be supplied through a config file so private fields decode
by name.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file with vendor tag mappings (default ./mxfdump.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log parse progress")

	// Add subcommands
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(ripCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// parseFile opens and parses one MXF file with the configured vendor
// mappings, optionally sniffing the essence payloads.
func parseFile(path string, sniff bool) (*s377m.MXF, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	mappings, err := cfg.vendorMappings()
	if err != nil {
		return nil, err
	}

	opts := []func(*s377m.Decoder){s377m.WithLogger(newLogger())}
	if len(mappings) > 0 {
		opts = append(opts, s377m.WithVendor(mappings))
	}
	if sniff {
		sc := s377m.NewSniffContext()
		opts = append(opts, s377m.WithSniffers(
			s377m.SniffTest{DataID: jsonhandle.DataIdentifier},
			s377m.SniffTest{
				DataID: xmlhandle.DataIdentifier,
				Sniffs: []s377m.Sniffer{xmlhandle.PathSniffer(sc, "namespace-uri(/*)")},
			},
		))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s377m.ParseMXF(f, opts...)
}
