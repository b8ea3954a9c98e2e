package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// Generator classifies user-named custom exercises with the OpenAI API.
// Without an API key it degrades to a minimal bodyweight entry so custom
// exercises always resolve.
type Generator struct {
	client     openai.Client
	logger     *slog.Logger
	configured bool
}

// NewGenerator creates a custom exercise generator.
func NewGenerator(logger *slog.Logger, openaiAPIKey string) *Generator {
	return &Generator{
		client:     openai.NewClient(option.WithAPIKey(openaiAPIKey)),
		logger:     logger,
		configured: openaiAPIKey != "",
	}
}

type generatedExercise struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    []string `json:"equipment"`
	Difficulty   string   `json:"difficulty"`
}

type generatedExerciseSchema struct{}

func (generatedExerciseSchema) MarshalJSON() ([]byte, error) {
	muscleGroupsJSON, err := json.Marshal(MuscleGroups)
	if err != nil {
		return nil, fmt.Errorf("marshal muscle groups: %w", err)
	}
	equipmentJSON, err := json.Marshal(Equipment)
	if err != nil {
		return nil, fmt.Errorf("marshal equipment: %w", err)
	}

	return fmt.Appendf(nil, `{
		  "type": "object",
		  "required": ["name", "category", "muscle_groups", "equipment", "difficulty"],
		  "properties": {
			"name": {
			  "type": "string",
			  "description": "Display name of the exercise"
			},
			"category": {
			  "type": "string",
			  "description": "Movement type of the exercise",
			  "enum": ["compound", "isolation", "cardio", "warmup", "stretch"]
			},
			"muscle_groups": {
			  "type": "array",
			  "description": "Muscle groups targeted by the exercise",
			  "items": {
				"type": "string",
				"enum": %s
			  }
			},
			"equipment": {
			  "type": "array",
			  "description": "Equipment needed to perform the exercise",
			  "items": {
				"type": "string",
				"enum": %s
			  }
			},
			"difficulty": {
			  "type": "string",
			  "description": "Experience level needed to perform the exercise safely",
			  "enum": ["beginner", "intermediate", "advanced"]
			}
		  },
		  "additionalProperties": false
		}`, muscleGroupsJSON, equipmentJSON), nil
}

// Generate classifies the named exercise. It never returns an error for API
// failures, only for an empty name; failures fall back to a minimal entry.
func (g *Generator) Generate(ctx context.Context, name string) (Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Exercise{}, fmt.Errorf("exercise name cannot be empty")
	}
	if !g.configured {
		return minimalExercise(name), nil
	}

	exercise, err := g.classify(ctx, name)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "custom exercise classification failed",
			slog.String("name", name),
			slog.String("error", err.Error()))
		return minimalExercise(name), nil
	}
	return exercise, nil
}

func (g *Generator) classify(ctx context.Context, name string) (Exercise, error) {
	prompt := fmt.Sprintf(`Classify the exercise "%s" for a strength training app.
Pick its movement category, the muscle groups it targets, the equipment it
needs, and the experience level required to perform it safely. Use the exact
enum values from the schema. Prefer "Bodyweight" equipment when no external
load is required.`, name)

	chat, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "exercise",
					Description: openai.String("Classification of a fitness exercise"),
					Schema:      generatedExerciseSchema{},
					Strict:      openai.Bool(true),
				},
			},
		},
		Model: openai.ChatModelGPT4o,
	})
	if err != nil {
		return Exercise{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(chat.Choices) == 0 {
		return Exercise{}, fmt.Errorf("chat completion returned no choices")
	}

	var generated generatedExercise
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &generated); err != nil {
		return Exercise{}, fmt.Errorf("parse exercise response: %w", err)
	}
	if generated.Name == "" || generated.Category == "" || len(generated.MuscleGroups) == 0 {
		return Exercise{}, fmt.Errorf("generated exercise is missing required fields")
	}

	return Exercise{
		ID:           customID(name),
		Name:         generated.Name,
		Category:     Category(generated.Category),
		MuscleGroups: generated.MuscleGroups,
		Equipment:    generated.Equipment,
		Difficulty:   Difficulty(generated.Difficulty),
	}, nil
}

func minimalExercise(name string) Exercise {
	return Exercise{
		ID:           customID(name),
		Name:         titleCase(name),
		Category:     CategoryIsolation,
		MuscleGroups: []string{"Full Body"},
		Equipment:    []string{"Bodyweight"},
		Difficulty:   DifficultyBeginner,
	}
}

// customID slugifies a user-supplied name into a stable catalog ID.
func customID(name string) string {
	var b strings.Builder
	b.WriteString("custom-")
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
