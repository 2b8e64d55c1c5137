package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	s377m "github.com/metarex-media/mxf-s377m"
)

var (
	dumpYAML  bool
	dumpSniff bool
)

func init() {
	dumpCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "Emit the machine readable summary instead of the listing")
	dumpCmd.Flags().BoolVar(&dumpSniff, "sniff", false, "Classify essence payloads by content")
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "List every record of a file and draw its metadata tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		mxf, err := parseFile(args[0], dumpSniff)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if dumpYAML {
			b, err := yaml.Marshal(mxf)
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		}

		for _, rec := range mxf.Records {
			printRecord(out, rec)
		}
		fmt.Fprintln(out)
		mxf.Describe(out)
		return nil
	},
	Args: cobra.ExactArgs(1),
}

var (
	partitionColor = color.New(color.FgCyan, color.Bold)
	metadataColor  = color.New(color.FgGreen)
	darkColor      = color.New(color.FgYellow)
	indexColor     = color.New(color.FgMagenta)
)

// printRecord writes one listing line: offset, footprint and what the
// record is.
func printRecord(w io.Writer, rec s377m.Record) {
	f := rec.Framing()
	head := fmt.Sprintf("%10d  %-10s", f.Offset, fmt.Sprintf("+%d", f.TotalLength()))

	switch r := rec.(type) {
	case *s377m.Partition:
		state := "open"
		if r.Closed {
			state = "closed"
		}
		if r.Complete {
			state += ", complete"
		} else {
			state += ", incomplete"
		}
		partitionColor.Fprintf(w, "%s %s partition (%s)\n", head, r.Kind, state)
	case *s377m.Primer:
		metadataColor.Fprintf(w, "%s primer pack, %d entries\n", head, r.Count())
	case *s377m.Set:
		if r.Dark {
			darkColor.Fprintf(w, "%s dark set %s, %d fields\n", head, r.Key, len(r.Fields()))
			return
		}
		metadataColor.Fprintf(w, "%s %s, %d fields\n", head, r.Kind, len(r.Fields()))
	case *s377m.RandomIndex:
		indexColor.Fprintf(w, "%s random index pack, %d partitions\n", head, len(r.Entries))
	case *s377m.Opaque:
		switch {
		case r.IsFill():
			fmt.Fprintf(w, "%s fill, %d bytes\n", head, len(r.Data))
		case r.ContentType != "":
			fmt.Fprintf(w, "%s data %s (%s)\n", head, r.Key, r.ContentType)
		default:
			fmt.Fprintf(w, "%s data %s, %d bytes\n", head, r.Key, len(r.Data))
		}
	}
}
