package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
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
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case RoleSyncReport:
		o.printRoleSyncReport(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"displayName"`
	GameTag            string     `json:"gameTag"`
	Verified           bool       `json:"verified"`
	TeamID             *string    `json:"teamId"`
	IsFreeAgent        bool       `json:"isFreeAgent"`
	FreeAgentExpiresAt *time.Time `json:"freeAgentExpiresAt"`
}

// RoleSyncReport response type
type RoleSyncReport struct {
	TeamsProcessed int             `json:"teamsProcessed"`
	MembersChecked int             `json:"membersChecked"`
	RolesGranted   int             `json:"rolesGranted"`
	Errors         []RoleSyncError `json:"errors"`
}

// RoleSyncError response type
type RoleSyncError struct {
	TeamID   string `json:"teamId"`
	PlayerID string `json:"playerId"`
	Error    string `json:"error"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.ID)
	if p.DisplayName != "" {
		fmt.Printf("  Name:      %s\n", p.DisplayName)
	}
	if p.GameTag != "" {
		fmt.Printf("  Tag:       %s\n", p.GameTag)
	}
	fmt.Printf("  Verified:  %t\n", p.Verified)
	if p.TeamID != nil {
		fmt.Printf("  Team:      %s\n", *p.TeamID)
	}
	fmt.Printf("  Free agent: %t\n", p.IsFreeAgent)
	if p.FreeAgentExpiresAt != nil {
		fmt.Printf("  Expires:   %s\n", p.FreeAgentExpiresAt.Format(time.RFC3339))
	}
}

func (o *Output) printRoleSyncReport(r RoleSyncReport) {
	fmt.Printf("Teams processed:  %d\n", r.TeamsProcessed)
	fmt.Printf("Members checked:  %d\n", r.MembersChecked)
	fmt.Printf("Roles granted:    %d\n", r.RolesGranted)
	if len(r.Errors) > 0 {
		fmt.Printf("Errors:\n")
		for _, e := range r.Errors {
			fmt.Printf("  team %s member %s: %s\n", e.TeamID, e.PlayerID, e.Error)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
