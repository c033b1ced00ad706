package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/estateops/triage/internal/core/domain"
)

var (
	processID      string
	processFile    string
	processContent string
	processJSON    bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Triage a single document",
	Long:  `Process a document through classification and compliance checking. Content comes from --file or --content.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := processContent
		if processFile != "" {
			raw, err := os.ReadFile(processFile)
			if err != nil {
				fatal("read document file", err)
			}
			content = string(raw)
		} else if content == "" {
			fatal("missing input", fmt.Errorf("either --file or --content must be provided"))
		}

		doc := domain.Document{
			ID:      processID,
			Content: domain.SanitizeContent(content),
		}
		if err := domain.ValidateDocument(doc); err != nil {
			fatal("invalid document", err)
		}

		pipeline, err := newPipeline()
		if err != nil {
			fatal("initialize pipeline", err)
		}

		result := pipeline.Process(context.Background(), doc)
		if processJSON {
			printJSON(result)
			return
		}
		printResult(result)
	},
}

func printJSON(payload any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		fatal("encode json", err)
	}
}

func printResult(result domain.ProcessingResult) {
	fmt.Printf("Document:    %s\n", result.DocumentID)
	fmt.Printf("Status:      %s\n", result.Status)
	fmt.Printf("Duration:    %.2f ms\n", result.ProcessingTimeMS)

	if c := result.Classification; c != nil {
		fmt.Printf("Category:    %s (%s)\n", c.CategoryName, c.CategoryCode)
		fmt.Printf("Confidence:  %.0f%%\n", c.Confidence*100)
		if len(c.MatchedKeywords) > 0 {
			fmt.Printf("Keywords:    %s\n", strings.Join(c.MatchedKeywords, ", "))
		}
		fmt.Printf("Reasoning:   %s\n", c.Reasoning)
	}

	if comp := result.Compliance; comp != nil {
		if comp.Compliant {
			fmt.Printf("Compliance:  ok (%d rules checked)\n", comp.CheckedRules)
		} else {
			fmt.Printf("Compliance:  FAILED (%d rules checked)\n", comp.CheckedRules)
			for _, v := range comp.Violations {
				fmt.Printf("  - %s\n", v)
			}
		}
	}

	for _, e := range result.Errors {
		fmt.Printf("Error:       %s\n", e)
	}
}

func init() {
	processCmd.Flags().StringVarP(&processID, "id", "d", "", "Document ID (required)")
	processCmd.Flags().StringVarP(&processFile, "file", "f", "", "Path to document file")
	processCmd.Flags().StringVarP(&processContent, "content", "c", "", "Document content passed inline")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "Output result as JSON")
	_ = processCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(processCmd)
}
