// Command cardcheck печатает бренд и результат проверки Луна для номеров карт.
//
// Номера берутся из аргументов, из stdin (флаг -stdin, по одному в строке)
// или из встроенного демонстрационного набора, если ничего не передано.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avc/cardbrand/internal/card"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Error("cardcheck failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	fromStdin := fs.Bool("stdin", false, "read card numbers from stdin, one per line")
	if err := fs.Parse(args); err != nil {
		return err
	}

	numbers := fs.Args()
	if *fromStdin {
		var err error
		if numbers, err = readLines(stdin); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(numbers) == 0 {
		numbers = card.SampleNumbers()
	}

	w := bufio.NewWriter(stdout)
	for _, number := range numbers {
		if _, err := fmt.Fprintln(w, card.Check(number)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return w.Flush()
}

// readLines читает непустые строки; пробелы внутри номера сохраняются
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
