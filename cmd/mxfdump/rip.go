package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	s377m "github.com/metarex-media/mxf-s377m"
)

var ripYAML bool

func init() {
	ripCmd.Flags().BoolVar(&ripYAML, "yaml", false, "Emit the entries as yaml")
}

var ripCmd = &cobra.Command{
	Use:   "rip <file>",
	Short: "Show the random index pack of a file",
	Long: `List the partition offsets the random index pack declares, checked
against the partitions the parse actually found. The pack's overall
length check runs as part of the parse, so any listing at all means it
passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mxf, err := parseFile(args[0], false)
		if err != nil {
			return err
		}
		if mxf.RIP == nil {
			return fmt.Errorf("%s carries no random index pack", args[0])
		}

		out := cmd.OutOrStdout()

		if ripYAML {
			b, err := yaml.Marshal(mxf.RIP.Entries)
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		}

		packs := make(map[uint64]*s377m.Partition, len(mxf.Partitions))
		for _, pc := range mxf.Partitions {
			packs[uint64(pc.Pack.Offset)] = pc.Pack
		}

		fmt.Fprintf(out, "random index pack at %d, length check passed\n", mxf.RIP.Offset)
		for _, e := range mxf.RIP.Entries {
			if p, ok := packs[e.Offset]; ok {
				fmt.Fprintf(out, "  body sid %4d  %s partition at %d\n", e.BodySID, p.Kind, e.Offset)
				continue
			}
			darkColor.Fprintf(out, "  body sid %4d  no partition found at %d\n", e.BodySID, e.Offset)
		}
		return nil
	},
	Args: cobra.ExactArgs(1),
}
