// Package planner implements the prompt-to-structured-data pipeline: it
// builds deterministic instructions for the upstream completion model and
// parses the model's free-text output into the package schema.
package planner

import (
	"fmt"
	"strings"

	"github.com/moizlokhandwala/aitravelagent/models"
)

// packageSchemaExample communicates the expected JSON shape to the model by
// example. The schema is informal: nothing enforces it upstream, so the
// parser must treat compliance as best-effort.
const packageSchemaExample = `{
  "packages": [
    {
      "package_id": "string",
      "title": "string",
      "days": [
        {
          "day": 1,
          "date": "YYYY-MM-DD",
          "activities": [
            {
              "time": "10:00 AM",
              "place": "Some Place",
              "activity": "Some Activity",
              "cost": "$25"
            }
          ]
        }
      ],
      "total_cost_estimate": "$700",
      "accommodation": {
        "name": "Hotel Name",
        "cost_per_night": "$100",
        "amenities": ["WiFi", "Breakfast"]
      },
      "local_transport": ["Taxi", "Bus"],
      "visa_required": true,
      "notes": "Important travel tips"
    }
  ]
}`

// BuildPromptInstruction embeds the user's literal free-text prompt into the
// instruction sent to the model. It is a pure function of its input.
func BuildPromptInstruction(req models.PromptRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Act as a professional travel assistant. Based on this user prompt:\n")
	fmt.Fprintf(&b, "%q, suggest 3 unique travel packages.\n", req.Prompt)
	b.WriteString(`Each package should include:
- Title
- Day-wise breakdown with time, place, activity, cost
- Accommodation info
- Total cost estimate
- Whether visa is required
- Notes

Strict formatting rules:
- Return only valid JSON (no markdown, no comments)

Format the response as JSON:
`)
	b.WriteString(packageSchemaExample)

	return b.String()
}

// BuildFilterInstruction builds the instruction for structured trip
// parameters. The trip duration is the inclusive day count between from_date
// and to_date; absent dates are rejected with [ErrMissingDates] and a
// to_date preceding from_date with [ErrInvalidDateRange], rather than
// silently producing a nonsense duration. extraContext, when non-empty, is
// appended verbatim (destination country facts supplied by the caller).
func BuildFilterInstruction(req models.FilterRequest, extraContext string) (string, error) {
	duration, err := TripDuration(req.FromDate, req.ToDate)
	if err != nil {
		return "", err
	}

	travelType := req.TravelType
	if travelType == "" {
		travelType = "flexible"
	}

	var b strings.Builder

	b.WriteString("Act as a travel assistant. Suggest 3 complete travel packages for:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Duration: %d days (from %s to %s)\n", duration, req.FromDate, req.ToDate)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "- Travel Type: %s\n", travelType)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Assume the typical seasonal weather in %s during %s to %s.\n", req.Destination, req.FromDate, req.ToDate)
	b.WriteString(`- If this is a hot or rainy period, avoid long outdoor activities in the day.
- Recommend indoor, weather-safe, and comfort-focused experiences when applicable.
- Include time for breaks, flexibility, and convenience.
`)

	if extraContext != "" {
		b.WriteString("\n")
		b.WriteString(extraContext)
		b.WriteString("\n")
	}

	b.WriteString("\nStrict formatting rules:\n")
	b.WriteString("- Return only valid JSON (no markdown, no comments)\n")
	b.WriteString("- Each package must include:\n")
	b.WriteString("  - package_id, title\n")
	fmt.Fprintf(&b, "  - day-wise plans for each of the %d days\n", duration)
	b.WriteString(`  - total_cost_estimate
  - accommodation (with cost and amenities)
  - visa_required (true/false)
  - local_transport (list)
  - notes (travel tips, warnings, etc.)

Use this exact format:
`)
	b.WriteString(packageSchemaExample)

	return b.String(), nil
}

// TripDuration computes the inclusive day count of a trip: a trip starting
// and ending on the same date lasts exactly one day. Returns
// [ErrMissingDates] when either date is absent and [ErrInvalidDateRange]
// when to precedes from.
func TripDuration(from, to models.Date) (int, error) {
	if from.IsZero() || to.IsZero() {
		return 0, ErrMissingDates
	}

	days := from.DaysUntil(to)
	if days < 0 {
		return 0, ErrInvalidDateRange
	}

	return days + 1, nil
}
