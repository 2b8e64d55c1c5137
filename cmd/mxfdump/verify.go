package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// verifyReport is the yaml shape the verify command emits.
type verifyReport struct {
	File       string   `yaml:"file"`
	Pass       bool     `yaml:"pass"`
	Records    int      `yaml:"records"`
	Partitions int      `yaml:"partitions"`
	Unresolved int      `yaml:"unresolvedFields"`
	Errors     []string `yaml:"errors,omitempty"`
}

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Check a file against the partition and random index rules",
	Long: `Parse a whole file, reporting structural violations: bad partition keys
or versions, header and footer pointer rules, body SID rules and the
random index length check, then the cross record rules: partition order,
the pointer chain, region byte counts and random index coverage. Fields
that could not be resolved are counted but never fail the file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := verifyReport{File: args[0], Pass: true}

		mxf, err := parseFile(args[0], false)
		if err != nil {
			report.Pass = false
			report.Errors = append(report.Errors, err.Error())
		} else {
			report.Records = len(mxf.Records)
			report.Partitions = len(mxf.Partitions)
			for _, problem := range mxf.Check() {
				report.Pass = false
				report.Errors = append(report.Errors, problem.Error())
			}
			for _, set := range mxf.Sets() {
				for _, fld := range set.Fields() {
					if fld.Err != nil {
						report.Unresolved++
					}
				}
			}
		}

		b, marshalErr := yaml.Marshal(report)
		if marshalErr != nil {
			return marshalErr
		}
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return err
		}

		if !report.Pass {
			return fmt.Errorf("%s failed verification", args[0])
		}
		return nil
	},
	Args: cobra.ExactArgs(1),
}
