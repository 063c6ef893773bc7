package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/internal/pipeline"
)

func newCaseCmd(a *app) *cobra.Command {
	var to string

	caseCmd := &cobra.Command{
		Use:   "case --to <case> [text...]",
		Short: "Convert case and naming conventions",
		Long: `Converts each input to the case named by --to:

  ` + strings.Join(pipeline.CaseConversions, ", ") + `

Examples:
  textkit case --to snake userProfileData     # user_profile_data
  textkit case --to pascal user-profile-data  # UserProfileData
  textkit case --to upper straße              # STRASSE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return errors.InvalidArgument(errors.ModuleCLI, "case", "--to is required")
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			results := make([]string, len(inputs))
			for i, input := range inputs {
				result, err := pipeline.ConvertCase(input, to)
				if err != nil {
					return err
				}
				results[i] = result
			}
			return writeLines(cmd.OutOrStdout(), results)
		},
	}

	caseCmd.Flags().StringVarP(&to, "to", "t", "", "target case")

	return caseCmd
}
