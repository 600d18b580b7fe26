package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/config"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the assessment catalog: 7 dimensions and their question banks.
// Safe to re-run, already-seeded dimensions are skipped by name.

type questionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type questionSeed struct {
	Text    string
	Type    string // "scale" or "multiple_choice"
	Options []questionOption
}

type dimensionSeed struct {
	Name        string
	Description string
	Weight      int
	OrderIndex  int
	Questions   []questionSeed
}

func scale(labels ...string) []questionOption {
	options := make([]questionOption, len(labels))
	for i, label := range labels {
		options[i] = questionOption{Value: fmt.Sprint(i + 1), Label: label}
	}
	return options
}

var (
	agreement  = scale("Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree")
	importance = scale("Not Important", "Slightly Important", "Moderately Important", "Very Important", "Extremely Important")
	frequency  = scale("Never", "Rarely", "Sometimes", "Often", "Very Often")
)

var catalog = []dimensionSeed{
	{
		Name:        "Personality Traits",
		Description: "Assessment of core personality characteristics based on established psychological models",
		Weight:      20,
		OrderIndex:  1,
		Questions: []questionSeed{
			{Text: "I enjoy being the center of attention at social gatherings", Type: "scale", Options: agreement},
			{Text: "I prefer having a few close friends rather than many acquaintances", Type: "scale", Options: agreement},
			{Text: "I often worry about things that might go wrong", Type: "scale", Options: agreement},
			{Text: "I stay calm under pressure", Type: "scale", Options: agreement},
			{Text: "I enjoy trying new experiences and activities", Type: "scale", Options: agreement},
		},
	},
	{
		Name:        "Values & Beliefs",
		Description: "Evaluation of core principles and beliefs that guide decision-making",
		Weight:      25,
		OrderIndex:  2,
		Questions: []questionSeed{
			{Text: "Which value is most important to you?", Type: "multiple_choice", Options: []questionOption{
				{Value: "honesty", Label: "Honesty"},
				{Value: "loyalty", Label: "Loyalty"},
				{Value: "compassion", Label: "Compassion"},
				{Value: "independence", Label: "Independence"},
				{Value: "achievement", Label: "Achievement"},
			}},
			{Text: "How important is family in your life?", Type: "scale", Options: importance},
			{Text: "How important is financial success to you?", Type: "scale", Options: importance},
			{Text: "How important is spiritual or religious practice in your life?", Type: "scale", Options: importance},
			{Text: "How important is environmental conservation to you?", Type: "scale", Options: importance},
		},
	},
	{
		Name:        "Interests & Activities",
		Description: "Analysis of hobbies and preferred activities",
		Weight:      15,
		OrderIndex:  3,
		Questions: []questionSeed{
			{Text: "How often do you engage in creative activities (art, music, writing, etc.)?", Type: "scale", Options: frequency},
			{Text: "How often do you participate in physical activities or sports?", Type: "scale", Options: frequency},
			{Text: "How important is traveling to new places in your life?", Type: "scale", Options: importance},
			{Text: "Do you prefer indoor or outdoor activities?", Type: "multiple_choice", Options: []questionOption{
				{Value: "indoor", Label: "Strongly prefer indoor"},
				{Value: "mostly_indoor", Label: "Mostly prefer indoor"},
				{Value: "both", Label: "Enjoy both equally"},
				{Value: "mostly_outdoor", Label: "Mostly prefer outdoor"},
				{Value: "outdoor", Label: "Strongly prefer outdoor"},
			}},
			{Text: "How interested are you in learning about new technologies?", Type: "scale", Options: scale("Not Interested", "Slightly Interested", "Moderately Interested", "Very Interested", "Extremely Interested")},
		},
	},
	{
		Name:        "Communication Styles",
		Description: "Assessment of how individuals express themselves and resolve conflicts",
		Weight:      15,
		OrderIndex:  4,
		Questions: []questionSeed{
			{Text: "When discussing sensitive topics, I prefer to:", Type: "multiple_choice", Options: []questionOption{
				{Value: "direct", Label: "Be direct and straightforward"},
				{Value: "somewhat_direct", Label: "Be mostly direct but tactful"},
				{Value: "balanced", Label: "Balance directness with sensitivity"},
				{Value: "somewhat_indirect", Label: "Be somewhat indirect to avoid conflict"},
				{Value: "indirect", Label: "Be indirect and very careful with words"},
			}},
			{Text: "When there is a disagreement, I typically:", Type: "multiple_choice", Options: []questionOption{
				{Value: "confront", Label: "Address it immediately"},
				{Value: "discuss_later", Label: "Wait for the right time to discuss it"},
				{Value: "reflect_first", Label: "Think about it thoroughly before discussing"},
				{Value: "avoid_minor", Label: "Let minor issues go"},
				{Value: "avoid_most", Label: "Avoid most confrontations"},
			}},
			{Text: "I express my emotions:", Type: "multiple_choice", Options: []questionOption{
				{Value: "very_openly", Label: "Very openly and intensely"},
				{Value: "openly", Label: "Openly"},
				{Value: "selectively", Label: "Selectively depending on the situation"},
				{Value: "carefully", Label: "Carefully and in a controlled way"},
				{Value: "rarely", Label: "Rarely or not at all"},
			}},
			{Text: "When listening to others, I tend to:", Type: "multiple_choice", Options: []questionOption{
				{Value: "interrupt", Label: "Interrupt with my thoughts and solutions"},
				{Value: "think_ahead", Label: "Think ahead to my response"},
				{Value: "actively_listen", Label: "Listen actively but offer my view"},
				{Value: "understand_first", Label: "Focus completely on understanding first"},
				{Value: "just_listen", Label: "Just listen without planning a response"},
			}},
			{Text: "When making decisions with others, I prefer to:", Type: "multiple_choice", Options: []questionOption{
				{Value: "lead", Label: "Take the lead and direct the process"},
				{Value: "contribute", Label: "Actively contribute ideas and opinions"},
				{Value: "collaborate", Label: "Collaborate equally with everyone"},
				{Value: "support", Label: "Support the process but follow others' lead"},
				{Value: "defer", Label: "Defer to others' expertise or preferences"},
			}},
		},
	},
	{
		Name:        "Life Goals & Priorities",
		Description: "Evaluation of long-term aspirations and current priorities",
		Weight:      15,
		OrderIndex:  5,
		Questions: []questionSeed{
			{Text: "What is your most important long-term goal?", Type: "multiple_choice", Options: []questionOption{
				{Value: "career", Label: "Career success and advancement"},
				{Value: "family", Label: "Building a family"},
				{Value: "financial", Label: "Financial independence"},
				{Value: "personal_growth", Label: "Personal growth and development"},
				{Value: "societal", Label: "Making a positive impact on society"},
			}},
			{Text: "How do you approach work-life balance?", Type: "multiple_choice", Options: []questionOption{
				{Value: "work_first", Label: "Work comes first most of the time"},
				{Value: "mostly_work", Label: "Primarily focused on work with some personal time"},
				{Value: "balanced", Label: "Strive for an equal balance"},
				{Value: "mostly_life", Label: "Prioritize personal life with work as necessary"},
				{Value: "life_first", Label: "Personal life always comes first"},
			}},
			{Text: "What is your approach to saving and spending money?", Type: "multiple_choice", Options: []questionOption{
				{Value: "very_frugal", Label: "Save as much as possible, spend minimally"},
				{Value: "mostly_save", Label: "Focus on saving but enjoy some spending"},
				{Value: "balanced", Label: "Balance between saving and spending"},
				{Value: "mostly_spend", Label: "Enjoy spending with some saving"},
				{Value: "live_now", Label: "Live in the moment, worry less about saving"},
			}},
			{Text: "How important is it for you to live near family?", Type: "scale", Options: importance},
			{Text: "How do you feel about having children?", Type: "multiple_choice", Options: []questionOption{
				{Value: "definitely_want", Label: "Definitely want children"},
				{Value: "probably_want", Label: "Probably want children"},
				{Value: "undecided", Label: "Undecided or could go either way"},
				{Value: "probably_not", Label: "Probably don't want children"},
				{Value: "definitely_not", Label: "Definitely don't want children"},
			}},
		},
	},
	{
		Name:        "Emotional Intelligence",
		Description: "Measurement of ability to understand and manage emotions",
		Weight:      5,
		OrderIndex:  6,
		Questions: []questionSeed{
			{Text: "How well do you understand your own emotions?", Type: "scale", Options: scale("Not Well at All", "Slightly Well", "Moderately Well", "Very Well", "Extremely Well")},
			{Text: "I can usually recognize when others are feeling stressed or upset", Type: "scale", Options: agreement},
			{Text: "When I'm upset, I can calm myself down effectively", Type: "scale", Options: agreement},
			{Text: "I can adapt my communication based on others' emotional states", Type: "scale", Options: agreement},
			{Text: "When someone shares their problems with me, I usually focus on:", Type: "multiple_choice", Options: []questionOption{
				{Value: "solutions", Label: "Offering solutions"},
				{Value: "mostly_solutions", Label: "Mostly solutions with some listening"},
				{Value: "balanced", Label: "Both listening and offering solutions"},
				{Value: "mostly_listening", Label: "Mostly listening with some suggestions"},
				{Value: "just_listening", Label: "Just listening and providing emotional support"},
			}},
		},
	},
	{
		Name:        "Lifestyle Preferences",
		Description: "Assessment of daily habits, routines, and living preferences",
		Weight:      5,
		OrderIndex:  7,
		Questions: []questionSeed{
			{Text: "I prefer to live in a:", Type: "multiple_choice", Options: []questionOption{
				{Value: "urban", Label: "Urban city center"},
				{Value: "suburban", Label: "Suburban area"},
				{Value: "small_town", Label: "Small town"},
				{Value: "rural", Label: "Rural area"},
				{Value: "remote", Label: "Remote location"},
			}},
			{Text: "My preferred sleep schedule is:", Type: "multiple_choice", Options: []questionOption{
				{Value: "early_riser", Label: "Early riser (before 6am)"},
				{Value: "morning", Label: "Morning person (6-8am)"},
				{Value: "average", Label: "Average (7-9am)"},
				{Value: "late_morning", Label: "Late morning (8-10am)"},
				{Value: "night_owl", Label: "Night owl (stay up late, wake up late)"},
			}},
			{Text: "How important is cleanliness and organization in your living space?", Type: "scale", Options: scale(
				"Not Important - I'm very relaxed about mess",
				"Slightly Important - I prefer basic cleanliness",
				"Moderately Important - I like things tidy",
				"Very Important - I maintain a clean space",
				"Extremely Important - I keep things pristine",
			)},
			{Text: "How often do you prefer to eat out vs. cook at home?", Type: "multiple_choice", Options: []questionOption{
				{Value: "always_out", Label: "Almost always eat out"},
				{Value: "mostly_out", Label: "Mostly eat out, occasionally cook"},
				{Value: "balanced", Label: "Equal mix of eating out and cooking"},
				{Value: "mostly_cook", Label: "Mostly cook, occasionally eat out"},
				{Value: "always_cook", Label: "Almost always cook at home"},
			}},
			{Text: "How do you typically spend your weekends?", Type: "multiple_choice", Options: []questionOption{
				{Value: "very_social", Label: "Very socially active with many plans"},
				{Value: "somewhat_social", Label: "Somewhat social with some plans"},
				{Value: "balanced", Label: "Balance of social activities and alone time"},
				{Value: "somewhat_quiet", Label: "Mostly relaxing with occasional outings"},
				{Value: "very_quiet", Label: "Quiet, restful time at home"},
			}},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	dbConfig := config.LoadDBConfig()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.AssessmentDimension{}, &model.AssessmentQuestion{}); err != nil {
		log.Fatal("migration failed: ", err)
	}

	start := time.Now()
	seeded := 0
	for _, seed := range catalog {
		inserted, err := seedDimension(db, seed)
		if err != nil {
			log.Fatalf("seed dimension %q: %v", seed.Name, err)
		}
		if inserted {
			seeded++
			log.Printf("Added: %s (%d questions)", seed.Name, len(seed.Questions))
		} else {
			log.Printf("Skipped: %s (already seeded)", seed.Name)
		}
	}

	var dimensionCount, questionCount int64
	db.Model(&model.AssessmentDimension{}).Count(&dimensionCount)
	db.Model(&model.AssessmentQuestion{}).Count(&questionCount)
	log.Printf("Database now contains %d dimensions and %d questions (%d newly seeded, took %s)",
		dimensionCount, questionCount, seeded, time.Since(start).Round(time.Millisecond))
}

func seedDimension(db *gorm.DB, seed dimensionSeed) (bool, error) {
	var existing int64
	if err := db.Model(&model.AssessmentDimension{}).Where("name = ?", seed.Name).Count(&existing).Error; err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		dimension := model.AssessmentDimension{
			Name:        seed.Name,
			Description: seed.Description,
			Weight:      seed.Weight,
			OrderIndex:  seed.OrderIndex,
		}
		if err := tx.Create(&dimension).Error; err != nil {
			return err
		}
		for i, q := range seed.Questions {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			question := model.AssessmentQuestion{
				DimensionID:  dimension.ID,
				Text:         q.Text,
				QuestionType: q.Type,
				Options:      options,
				OrderIndex:   i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
