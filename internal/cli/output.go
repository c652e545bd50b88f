package cli

import (
	"encoding/json"
	"fmt"
)

// printJSON печатает результат команды с отступами, как его ждут скрипты.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
