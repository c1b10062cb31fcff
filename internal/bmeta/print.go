// Package bmeta печатает метаданные сборки, передаваемые через ldflags.
package bmeta

import "fmt"

const defaultValue = "N/A"

// Print Распечатывает версию, дату и комит сборки.
func Print(version, date, commit string) {
	fmt.Printf("Build version: %s\n", orDefault(version)) //nolint:forbidigo
	fmt.Printf("Build date: %s\n", orDefault(date))       //nolint:forbidigo
	fmt.Printf("Build commit: %s\n", orDefault(commit))   //nolint:forbidigo
}

func orDefault(v string) string {
	if v == "" {
		return defaultValue
	}
	return v
}
