package cmd

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/fff"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:               "schema <match|club>",
	Short:             "Print the JSON Schema of the --json output",
	Args:              cobra.ExactArgs(1),
	ValidArgs:         []string{"match", "club"},
	PersistentPreRunE: skipInit,
	RunE:              runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	schema, err := entitySchema(args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), schema)
}

// entitySchema reflects the JSON Schema of a match or club
func entitySchema(kind string) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{
		// Optional fields are pointers; nothing is required
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}

	switch kind {
	case "match":
		s := r.Reflect(&fff.Match{})
		s.Title = "FFF match"
		return s, nil
	case "club":
		s := r.Reflect(&fff.Club{})
		s.Title = "FFF club"
		return s, nil
	default:
		return nil, fmt.Errorf("unknown schema %q (must be one of: match, club)", kind)
	}
}
