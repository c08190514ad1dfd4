package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogSection string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the knowledge base the counselor answers from",
	Long:  "Print the knowledge base as YAML (or JSON with --json). The YAML output is a valid KNOWLEDGE_BASE_PATH file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := knowledge.Load(env.KNOWLEDGE_BASE_PATH)
		if err != nil {
			return err
		}
		return printCatalog(cmd.OutOrStdout(), kb, catalogSection, jsonOutput)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogSection, "section", "", "courses, contacts, faqs or general (default all)")
}

func printCatalog(w io.Writer, kb *knowledge.Base, section string, asJSON bool) error {
	var out interface{}
	switch strings.ToLower(section) {
	case "":
		out = kb
	case "courses":
		out = map[string]interface{}{"courses": kb.Courses}
	case "contacts":
		out = map[string]interface{}{"contacts": kb.Contacts}
	case "faqs":
		out = map[string]interface{}{"faqs": kb.Faqs}
	case "general":
		out = map[string]interface{}{"general": kb.General}
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
