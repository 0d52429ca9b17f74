package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"prakriti-api/internal/domain"
	"prakriti-api/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		tablesPath string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "cli_assess",
		Short: "Run the prakriti questionnaire in the terminal",
		Long:  `Asks every questionnaire dimension on stdin, classifies locally and prints the dosha result.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zap.NewExample()
			defer logger.Sync()

			tables := service.DefaultDoshaTables()
			if tablesPath != "" {
				loaded, err := service.LoadDoshaTablesFile(tablesPath)
				if err != nil {
					return err
				}
				tables = loaded
				logger.Info("custom dosha tables loaded", zap.String("path", tablesPath))
			}
			return runAssessment(cmd.InOrStdin(), cmd.OutOrStdout(), service.NewDoshaClassifier(tables), asJSON, logger)
		},
	}
	cmd.Flags().StringVar(&tablesPath, "tables", "", "YAML file with custom dosha tables")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runAssessment(in io.Reader, out io.Writer, classifier service.DoshaClassifier, asJSON bool, logger *zap.Logger) error {
	fmt.Fprintln(out, "===== Cuestionario Prakriti =====")
	fmt.Fprintln(out, "Elige el numero de la opcion que mejor te describe. Enter para saltar.")

	answers := collectAnswers(bufio.NewReader(in), out, service.Questionnaire())
	result, err := classifier.Classify(answers)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			fmt.Fprintln(out, "\nNo hay respuestas suficientes para clasificar.")
		}
		return err
	}
	if len(result.Ignored) > 0 {
		logger.Warn("answers ignored", zap.Strings("dimensions", result.Ignored))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(out, result)
	return nil
}

// collectAnswers recorre el cuestionario y devuelve dimension -> clave de opcion.
func collectAnswers(reader *bufio.Reader, out io.Writer, questions []domain.Question) map[string]string {
	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, len(questions), q.Label)
		for j, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, o.Label)
		}
		for {
			fmt.Fprint(out, "> ")
			line, err := reader.ReadString('\n')
			if err != nil && strings.TrimSpace(line) == "" {
				// Fin de la entrada: no quedan respuestas por leer.
				fmt.Fprintln(out)
				return answers
			}
			choice, ok := parseChoice(line, len(q.Options))
			if ok {
				if choice > 0 {
					answers[q.Dimension] = string(q.Options[choice-1].Key)
				}
				if err != nil {
					return answers
				}
				break
			}
			if err != nil {
				return answers
			}
			fmt.Fprintln(out, "Opcion invalida.")
		}
	}
	return answers
}

// parseChoice interpreta la entrada; 0 significa que se salto la pregunta.
func parseChoice(line string, options int) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, true
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > options {
		return 0, false
	}
	return n, true
}

func printResult(out io.Writer, result domain.ClassificationResult) {
	fmt.Fprintf(out, "\nDosha primario: %s\n", result.PrimaryDosha)
	fmt.Fprintf(out, "Dosha secundario: %s\n", result.SecondaryDosha)
	fmt.Fprintf(out, "Vata %d%% | Pitta %d%% | Kapha %d%%\n", result.Scores.Vata, result.Scores.Pitta, result.Scores.Kapha)

	printList(out, "Caracteristicas", result.Characteristics)
	printList(out, "Recomendaciones", result.Recommendations)
	printList(out, "Habitos de alimentacion", result.FeedingHabits)
}

func printList(out io.Writer, title string, items []string) {
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
