package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk shape of chart.yaml.
type fileFormat struct {
	IncomeSources     []string   `yaml:"income_sources"`
	ExpenseCategories []Category `yaml:"expense_categories"`
}

// Load reads a chart.yaml file from disk.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parsing chart: %w", err)
	}
	return New(ff.ExpenseCategories, ff.IncomeSources), nil
}

// Save writes the chart's categories and income sources to a YAML file.
func Save(path string, c *Chart) error {
	ff := fileFormat{
		IncomeSources:     c.IncomeSources(),
		ExpenseCategories: c.Categories(),
	}
	data, err := yaml.Marshal(ff)
	if err != nil {
		return fmt.Errorf("marshaling chart: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}
