package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultAPIHost = "edb-with-videos-and-images-by-ascendapi.p.rapidapi.com"

// bodyPartToMuscle maps API body part names to muscle group names.
var bodyPartToMuscle = map[string]string{
	"CHEST":      "Chest",
	"BACK":       "Back",
	"SHOULDERS":  "Shoulders",
	"BICEPS":     "Biceps",
	"TRICEPS":    "Triceps",
	"UPPER ARMS": "Biceps",
	"FOREARMS":   "Forearms",
	"THIGHS":     "Quads",
	"QUADRICEPS": "Quads",
	"HAMSTRINGS": "Hamstrings",
	"HIPS":       "Glutes",
	"CALVES":     "Calves",
	"WAIST":      "Core",
	"NECK":       "Shoulders",
	"FULL BODY":  "Full Body",
	"HANDS":      "Forearms",
	"FEET":       "Calves",
	"FACE":       "Core",
}

// targetMuscleToGroup maps anatomical target muscle names to muscle groups.
var targetMuscleToGroup = map[string]string{
	"PECTORALIS MAJOR STERNAL HEAD":    "Chest",
	"PECTORALIS MAJOR CLAVICULAR HEAD": "Chest",
	"ANTERIOR DELTOID":                 "Shoulders",
	"LATERAL DELTOID":                  "Shoulders",
	"POSTERIOR DELTOID":                "Shoulders",
	"LATISSIMUS DORSI":                 "Back",
	"TRAPEZIUS LOWER FIBERS":           "Back",
	"TRAPEZIUS MIDDLE FIBERS":          "Back",
	"TRAPEZIUS UPPER FIBERS":           "Back",
	"ERECTOR SPINAE":                   "Back",
	"TERES MAJOR":                      "Back",
	"TERES MINOR":                      "Back",
	"INFRASPINATUS":                    "Back",
	"SUBSCAPULARIS":                    "Back",
	"LEVATOR SCAPULAE":                 "Back",
	"BICEPS BRACHII":                   "Biceps",
	"BRACHIALIS":                       "Biceps",
	"BRACHIORADIALIS":                  "Forearms",
	"TRICEPS BRACHII":                  "Triceps",
	"WRIST FLEXORS":                    "Forearms",
	"WRIST EXTENSORS":                  "Forearms",
	"QUADRICEPS":                       "Quads",
	"HAMSTRINGS":                       "Hamstrings",
	"GLUTEUS MAXIMUS":                  "Glutes",
	"GLUTEUS MEDIUS":                   "Glutes",
	"GLUTEUS MINIMUS":                  "Glutes",
	"ADDUCTOR LONGUS":                  "Glutes",
	"ADDUCTOR BREVIS":                  "Glutes",
	"ADDUCTOR MAGNUS":                  "Glutes",
	"GASTROCNEMIUS":                    "Calves",
	"SOLEUS":                           "Calves",
	"TIBIALIS ANTERIOR":                "Calves",
	"RECTUS ABDOMINIS":                 "Core",
	"OBLIQUES":                         "Core",
	"TRANSVERSUS ABDOMINIS":            "Core",
	"ILIOPSOAS":                        "Core",
	"SERRATUS ANTERIOR":                "Core",
	"SERRATUS ANTE":                    "Core",
	"TENSOR FASCIAE LATAE":             "Glutes",
	"PECTINEUS":                        "Glutes",
	"GRACILIS":                         "Glutes",
	"SARTORIUS":                        "Quads",
	"POPLITEUS":                        "Hamstrings",
	"STERNOCLEIDOMASTOID":              "Core",
	"SPLENIUS":                         "Back",
	"DEEP HIP EXTERNAL ROTATORS":       "Glutes",
}

// equipmentMap maps API equipment names to display names.
var equipmentMap = map[string]string{
	"ASSISTED":         "Assisted",
	"BAND":             "Resistance Band",
	"BARBELL":          "Barbell",
	"BATTLING ROPE":    "Battle Rope",
	"BODY WEIGHT":      "Bodyweight",
	"BOSU BALL":        "Bosu Ball",
	"CABLE":            "Cable",
	"DUMBBELL":         "Dumbbell",
	"EZ BARBELL":       "EZ Bar",
	"HAMMER":           "Hammer",
	"KETTLEBELL":       "Kettlebell",
	"LEVERAGE MACHINE": "Machine",
	"MEDICINE BALL":    "Medicine Ball",
	"OLYMPIC BARBELL":  "Barbell",
	"POWER SLED":       "Sled",
	"RESISTANCE BAND":  "Resistance Band",
	"ROLL":             "Foam Roller",
	"ROLLBALL":         "Roll Ball",
	"ROPE":             "Rope",
	"SLED MACHINE":     "Sled",
	"SMITH MACHINE":    "Smith Machine",
	"STABILITY BALL":   "Stability Ball",
	"STICK":            "Stick",
	"SUSPENSION":       "Suspension",
	"TRAP BAR":         "Trap Bar",
	"VIBRATE PLATE":    "Vibrate Plate",
	"WEIGHTED":         "Weighted",
	"WHEEL ROLLER":     "Ab Wheel",
}

type apiExercise struct {
	ExerciseID       string   `json:"exerciseId"`
	Name             string   `json:"name"`
	ImageURL         string   `json:"imageUrl"`
	BodyParts        []string `json:"bodyParts"`
	Equipments       []string `json:"equipments"`
	ExerciseType     string   `json:"exerciseType"`
	TargetMuscles    []string `json:"targetMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Keywords         []string `json:"keywords"`
}

type apiMeta struct {
	Total       int    `json:"total"`
	HasNextPage bool   `json:"hasNextPage"`
	NextCursor  string `json:"nextCursor"`
}

type apiExerciseListResponse struct {
	Success bool          `json:"success"`
	Meta    *apiMeta      `json:"meta"`
	Data    []apiExercise `json:"data"`
}

type apiNamedItem struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type apiNamedListResponse struct {
	Success bool           `json:"success"`
	Data    []apiNamedItem `json:"data"`
}

// Client talks to the ExerciseDB API on RapidAPI.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	host       string
}

// NewClient constructs an ExerciseDB client. An empty apiKey produces an
// unconfigured client whose fetches fail fast, letting callers fall back to
// the built-in catalog.
func NewClient(logger *slog.Logger, httpClient *http.Client, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     apiKey,
		host:       defaultAPIHost,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if !c.Configured() {
		return fmt.Errorf("exercisedb api key not configured")
	}
	u := url.URL{
		Scheme:   "https",
		Host:     c.host,
		Path:     "/api/v1" + path,
		RawQuery: params.Encode(),
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// FetchAll pages through the full exercise list and converts every entry.
func (c *Client) FetchAll(ctx context.Context) ([]Exercise, error) {
	var all []apiExercise
	offset := 0
	const limit = 100
	for {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(limit))
		params.Set("offset", strconv.Itoa(offset))
		var page apiExerciseListResponse
		if err := c.get(ctx, "/exercises", params, &page); err != nil {
			return nil, fmt.Errorf("fetch exercises page at offset %d: %w", offset, err)
		}
		if !page.Success {
			break
		}
		all = append(all, page.Data...)
		if page.Meta == nil || !page.Meta.HasNextPage {
			break
		}
		offset += limit
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "fetched exercises from exercisedb",
		slog.Int("count", len(all)))

	exercises := make([]Exercise, 0, len(all))
	for _, apiEx := range all {
		exercises = append(exercises, toExercise(apiEx))
	}
	return exercises, nil
}

// FetchEquipment returns the deduplicated equipment names known to the API.
func (c *Client) FetchEquipment(ctx context.Context) ([]string, error) {
	var resp apiNamedListResponse
	if err := c.get(ctx, "/equipments", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch equipment list: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("fetch equipment list: unsuccessful response")
	}
	return mapNamedItems(resp.Data, equipmentMap), nil
}

// FetchBodyParts returns the deduplicated body part names known to the API.
func (c *Client) FetchBodyParts(ctx context.Context) ([]string, error) {
	var resp apiNamedListResponse
	if err := c.get(ctx, "/bodyparts", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch body parts: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("fetch body parts: unsuccessful response")
	}
	return mapNamedItems(resp.Data, bodyPartToMuscle), nil
}

func mapNamedItems(items []apiNamedItem, mapping map[string]string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range items {
		name, ok := mapping[item.Name]
		if !ok {
			name = titleCase(item.Name)
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func inferCategory(apiEx apiExercise) Category {
	exerciseType := strings.ToUpper(apiEx.ExerciseType)
	if exerciseType == "CARDIO" || exerciseType == "AEROBIC" {
		return CategoryCardio
	}
	groups := make(map[string]bool)
	for _, m := range apiEx.TargetMuscles {
		if g, ok := targetMuscleToGroup[m]; ok {
			groups[g] = true
		}
	}
	for _, bp := range apiEx.BodyParts {
		if g, ok := bodyPartToMuscle[bp]; ok {
			groups[g] = true
		}
	}
	if len(groups) >= 2 {
		return CategoryCompound
	}
	return CategoryIsolation
}

func inferDifficulty(apiEx apiExercise) Difficulty {
	exerciseType := strings.ToUpper(apiEx.ExerciseType)
	switch exerciseType {
	case "STRETCHING", "YOGA":
		return DifficultyBeginner
	case "PLYOMETRICS", "WEIGHTLIFTING":
		return DifficultyAdvanced
	}
	hasBarbell := false
	for _, eq := range apiEx.Equipments {
		if strings.Contains(eq, "BARBELL") {
			hasBarbell = true
			break
		}
	}
	if hasBarbell && inferCategory(apiEx) == CategoryCompound {
		return DifficultyIntermediate
	}
	return DifficultyBeginner
}

func muscleGroupsOf(apiEx apiExercise) []string {
	seen := make(map[string]bool)
	var groups []string
	add := func(g string) {
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	for _, bp := range apiEx.BodyParts {
		if g, ok := bodyPartToMuscle[bp]; ok {
			add(g)
		}
	}
	for _, m := range apiEx.TargetMuscles {
		if g, ok := targetMuscleToGroup[m]; ok {
			add(g)
		}
	}
	if len(groups) == 0 {
		return []string{"Full Body"}
	}
	return groups
}

func equipmentOf(apiEx apiExercise) []string {
	seen := make(map[string]bool)
	var equipment []string
	for _, eq := range apiEx.Equipments {
		name, ok := equipmentMap[eq]
		if !ok {
			name = eq
		}
		if !seen[name] {
			seen[name] = true
			equipment = append(equipment, name)
		}
	}
	return equipment
}

func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func toExercise(apiEx apiExercise) Exercise {
	var secondary []string
	for _, m := range apiEx.SecondaryMuscles {
		if g, ok := targetMuscleToGroup[m]; ok {
			secondary = append(secondary, g)
		} else {
			secondary = append(secondary, titleCase(m))
		}
	}
	exercise := Exercise{
		ID:               apiEx.ExerciseID,
		Name:             titleCase(apiEx.Name),
		Category:         inferCategory(apiEx),
		MuscleGroups:     muscleGroupsOf(apiEx),
		Equipment:        equipmentOf(apiEx),
		Difficulty:       inferDifficulty(apiEx),
		ImageURL:         apiEx.ImageURL,
		SecondaryMuscles: secondary,
	}
	if edges, ok := progressionEdges[exercise.ID]; ok {
		exercise.Progression = edges
	}
	return exercise
}
