package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/format"
)

func formatCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Pretty-print JSON or YAML from stdin as indented JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			var v format.Value
			switch from {
			case "json":
				if !json.Valid(data) {
					return fmt.Errorf("%w: input is not valid JSON", domain.ErrInvalidArgument)
				}
				// RawMessage keeps the input's key order.
				v = format.ValueOf(json.RawMessage(data))
			case "yaml":
				var doc yaml.Node
				if err := yaml.Unmarshal(data, &doc); err != nil {
					return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
				}
				v = yamlValue(&doc, nil)
			default:
				return fmt.Errorf("%w: unknown input format %q (want json or yaml)", domain.ErrInvalidArgument, from)
			}

			a.log.Debug("formatting %s value of kind %s", from, v.Kind())
			return format.Write(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json or yaml")
	return cmd
}

// yamlValue converts a parsed YAML node, keeping mapping keys in document
// order and rendering every key by its scalar text. seen holds the aliases
// being expanded, to stop self-referencing anchors.
func yamlValue(n *yaml.Node, seen map[*yaml.Node]bool) format.Value {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return format.Null()
		}
		return yamlValue(n.Content[0], seen)
	case yaml.SequenceNode:
		items := make([]format.Value, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, yamlValue(c, seen))
		}
		return format.Array(items...)
	case yaml.MappingNode:
		fields := make([]format.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields = append(fields, format.Field{
				Key:   n.Content[i].Value,
				Value: yamlValue(n.Content[i+1], seen),
			})
		}
		return format.Object(fields...)
	case yaml.AliasNode:
		if seen[n.Alias] {
			return format.Unrepresentable(fmt.Errorf("anchor %q refers to itself", n.Value))
		}
		if seen == nil {
			seen = make(map[*yaml.Node]bool)
		}
		seen[n.Alias] = true
		defer delete(seen, n.Alias)
		return yamlValue(n.Alias, seen)
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return format.Null()
	}
}

func yamlScalar(n *yaml.Node) format.Value {
	switch n.ShortTag() {
	case "!!null":
		return format.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return format.Bool(b)
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return format.Int(i)
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return format.Number(f)
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return format.Number(f)
		}
	}
	return format.String(n.Value)
}
