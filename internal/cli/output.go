package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Team:
		o.printTeam(v)
	case TeamList:
		o.printTeamList(v)
	case HostRoleInfo:
		o.printHostRoleInfo(v)
	case InvokeResult:
		fmt.Println(v.Response)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Team response type (matches API)
type Team struct {
	Channel string `json:"channel"`
	Role    Role   `json:"role"`
	Score   int64  `json:"score"`
}

// Role response type
type Role struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Color response type
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// TeamList response type
type TeamList struct {
	Teams []Team `json:"teams"`
}

// HostRoleInfo response type
type HostRoleInfo struct {
	Guild string `json:"guild"`
	Role  string `json:"role"`
}

// InvokeResult response type
type InvokeResult struct {
	Response string `json:"response"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("Channel: %s\n", t.Channel)
	fmt.Printf("Team: %s (%s)\n", t.Role.Name, t.Role.ID)
	fmt.Printf("Color: (%d, %d, %d)\n", t.Role.Color.R, t.Role.Color.G, t.Role.Color.B)
	fmt.Printf("Score: %d\n", t.Score)
}

func (o *Output) printTeamList(l TeamList) {
	if len(l.Teams) == 0 {
		fmt.Println("No teams registered")
		return
	}
	fmt.Printf("Teams (%d):\n", len(l.Teams))
	for _, t := range l.Teams {
		fmt.Printf("  - %s (channel %s): %d\n", t.Role.Name, t.Channel, t.Score)
	}
}

func (o *Output) printHostRoleInfo(h HostRoleInfo) {
	fmt.Printf("Guild: %s\n", h.Guild)
	fmt.Printf("Host Role: %s\n", h.Role)
}
