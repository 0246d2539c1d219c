package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixlayer/fixlayer/internal/logging"
	"github.com/fixlayer/fixlayer/pkg/layer"
	_ "github.com/fixlayer/fixlayer/pkg/layer/layers" // Register built-in layers
)

const formatJSON = "json"

// layerInfo represents a layer in JSON output.
type layerInfo struct {
	Number      int        `json:"number"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Rules       []ruleInfo `json:"rules"`
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Fixable     bool   `json:"fixable"`
}

func newLayersCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "List analysis layers and their rules",
		Long: `List the eight analysis layers with their rules, default severities,
and whether each rule supports auto-fixing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			registered := layer.DefaultRegistry.Layers()

			if format == formatJSON {
				return outputLayersJSON(registered)
			}

			logger := logging.NewInteractive()

			for _, l := range registered {
				logger.Info(fmt.Sprintf("layer %d: %s", l.Number(), l.Name()),
					"description", l.Description(),
				)

				for _, rule := range l.Rules() {
					fixable := "-"
					if rule.Fixable {
						fixable = "yes"
					}
					logger.Info("  "+rule.Name,
						logging.FieldSeverity, rule.Severity,
						logging.FieldFixable, fixable,
						"description", rule.Description,
					)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputLayersJSON outputs layers and rules as a JSON array.
func outputLayersJSON(registered []layer.Layer) error {
	infos := make([]layerInfo, 0, len(registered))
	for _, l := range registered {
		info := layerInfo{
			Number:      l.Number(),
			Name:        l.Name(),
			Description: l.Description(),
			Rules:       make([]ruleInfo, 0),
		}
		for _, rule := range l.Rules() {
			info.Rules = append(info.Rules, ruleInfo{
				Name:        rule.Name,
				Description: rule.Description,
				Severity:    string(rule.Severity),
				Fixable:     rule.Fixable,
			})
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding layers: %w", err)
	}
	return nil
}
