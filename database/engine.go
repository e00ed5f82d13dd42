package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Engine manages the lifecycle of one database file: schema creation,
// seeding, clearing and removal. Repository access goes through Connect,
// which hands out a fresh per-session Connection.
type Engine struct {
	Path string
}

func NewEngine(path string) *Engine {
	return &Engine{Path: path}
}

// Connect opens a new session against the engine's database file.
func (e *Engine) Connect() (*Connection, error) {
	db, err := New(e.Path)
	if err != nil {
		return nil, err
	}
	return NewConnection(db), nil
}

func (e *Engine) withDB(fn func(*DB) error) error {
	db, err := New(e.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// CreateSchema creates all four tables and their indexes.
func (e *Engine) CreateSchema() error {
	return e.withDB(func(db *DB) error {
		return db.Migrate()
	})
}

// Clear removes every row while keeping the schema. Children go first so
// the deletes succeed regardless of enforcement state.
func (e *Engine) Clear() error {
	return e.withDB(func(db *DB) error {
		for _, table := range []string{"resources", "goals", "user_profile", "users"} {
			if _, err := db.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// Drop removes the database file itself. Missing files are not an error.
func (e *Engine) Drop() error {
	err := os.Remove(e.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SeedFrom executes an external SQL dump file against the database.
func (e *Engine) SeedFrom(dumpPath string) error {
	script, err := os.ReadFile(dumpPath)
	if err != nil {
		return fmt.Errorf("failed to read seed dump: %w", err)
	}
	return e.withDB(func(db *DB) error {
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("failed to execute seed dump: %w", err)
		}
		return nil
	})
}

// ScratchPath returns a unique database file path under the system temp
// directory, for throwaway databases.
func ScratchPath() string {
	return filepath.Join(os.TempDir(), "goalz-"+uuid.NewString()+".db")
}

func i64(v int64) *int64 { return &v }

type seedUser struct {
	userID           int64
	nickname         string
	registrationDate int64
	password         string
	firstname        string
	lastname         string
	email            string
	website          string
	rating           float64
	age              int64
	gender           string
}

type seedGoal struct {
	goalID      int64
	parentID    *int64
	userID      int64
	title       string
	topic       string
	description string
	deadline    *int64
	status      float64
}

type seedResource struct {
	resourceID   int64
	goalID       int64
	userID       int64
	title        string
	link         string
	topic        string
	description  string
	requiredTime int64
	rating       float64
}

var seedUsers = []seedUser{
	{1, "Chouaib", 1362015937, "E6C5F49BD4DF062BC92419C7EA63806B",
		"Chouaib", "Ha", "c@h.com", "https://github.com/ChouaibHamek", 0.9, 24, "M"},
	{2, "Daniel", 1357724086, "AA47F8215C6F30A0DCDB2A36A9F4168E",
		"Daniel", "To", "d@t.com", "https://github.com/dtoniuc", 0.8, 18, "M"},
	{3, "Mina", 1389654321, "0F0E5F3DA2F8252E0B0C91E4D9EA63C1",
		"Mina", "Kallio", "m@k.com", "https://minakallio.fi", 0.6, 31, "F"},
	{4, "Arvo", 1402501200, "8C6976E5B5410415BDE908BD4DEE15DF",
		"Arvo", "Tuur", "a@t.com", "https://arvotuur.ee", 0.75, 28, "M"},
	{5, "Leena", 1425160800, "5E884898DA28047151D0E56F8DC62927",
		"Leena", "Virtanen", "l@v.com", "https://leenav.net", 0.5, 42, "F"},
	{6, "Sami", 1451606400, "6B1B36CBB04B41490BFC0AB2BFA26F86",
		"Sami", "Niemi", "s@n.com", "https://saminiemi.io", 0.3, 35, "M"},
}

// Nine goals owned by users 1 and 2; goal 2 carries the latest deadline
// and user 2 owns exactly goals 2 and 3. Goals 4 and 5 form a chain under
// goal 1 so cascade deletes have something to traverse.
var seedGoals = []seedGoal{
	{1, nil, 1, "Acquire citizenship", "Life, travel", "You know", i64(1519172121), 0.7},
	{2, nil, 2, "Cross country ski", "sports", "You know", i64(1616199840), 0.1},
	{3, nil, 2, "Learn to cook", "cooking", "Mediterranean basics", i64(1546300800), 0.4},
	{4, i64(1), 1, "Get fit for the test", "sports", "Citizenship fitness requirement", i64(1500000000), 0.2},
	{5, i64(4), 1, "Learn an instrument", "music", "Flute or piano", i64(1587600000), 0.3},
	{6, nil, 1, "Read 12 books", "reading", "One per month", i64(1514764800), 0.5},
	{7, nil, 1, "Run a marathon", "sports", "Helsinki city marathon", i64(1502000000), 0},
	{8, nil, 1, "Meditate daily", "wellbeing", "Ten minutes every morning", nil, 0.6},
	{9, nil, 1, "Start a blog", "writing", "Technical writing practice", nil, 0},
}

var seedResources = []seedResource{
	{1, 2, 1, "How to use skies",
		"https://www.tyrol.com/things-to-do/sports/cross-country-skiing/how-to-get-started",
		"sports", "Helpful if you are really into skiing", 12, 1},
	{2, 4, 2, "Cross fit best practices",
		"https://breakingmuscle.com/fitness/the-formula-for-a-successful-crossfit-gym",
		"sports", "Key to success in crossfit", 7, 0.9},
	{3, 1, 3, "US citizenship requirement",
		"https://www.uscis.gov/us-citizenship/citizenship-through-naturalization",
		"life", "US is an option, although the healthcare system maybe not as good", 3, 0.9},
	{4, 5, 4, "Flute techniques",
		"https://www.vsl.co.at/en/Concert_flute/Playing_Techniques/",
		"music", "It helped me a lot to learn the basic and advanced techniques", 40, 0.85},
	{5, 5, 4, "Piano techniques",
		"https://www.vsl.co.at/en/Concert_piano/Playing_Techniques/",
		"music", "It helped me a lot to learn the basic and advanced techniques", 50, 0.7},
}

// Seed loads the built-in fixture: six users, nine goals, five resources.
// Ids are explicit so the fixture is stable across runs.
func (e *Engine) Seed() error {
	return e.withDB(func(db *DB) error {
		for _, u := range seedUsers {
			if _, err := db.Exec(`
				INSERT INTO users (user_id, nickname, password, registration_date)
				VALUES (?, ?, ?, ?)
			`, u.userID, u.nickname, u.password, u.registrationDate); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.nickname, err)
			}
			if _, err := db.Exec(`
				INSERT INTO user_profile (user_id, firstname, lastname, email, website, rating, age, gender)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, u.userID, u.firstname, u.lastname, u.email, u.website, u.rating, u.age, u.gender); err != nil {
				return fmt.Errorf("failed to seed profile for %s: %w", u.nickname, err)
			}
		}

		for _, g := range seedGoals {
			if _, err := db.Exec(`
				INSERT INTO goals (goal_id, parent_id, user_id, title, topic, description, deadline, status)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, g.goalID, g.parentID, g.userID, g.title, g.topic, g.description, g.deadline, g.status); err != nil {
				return fmt.Errorf("failed to seed goal %d: %w", g.goalID, err)
			}
		}

		for _, res := range seedResources {
			if _, err := db.Exec(`
				INSERT INTO resources (resource_id, goal_id, user_id, title, link, topic, description, required_time, rating)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, res.resourceID, res.goalID, res.userID, res.title, res.link, res.topic,
				res.description, res.requiredTime, res.rating); err != nil {
				return fmt.Errorf("failed to seed resource %d: %w", res.resourceID, err)
			}
		}

		return nil
	})
}
