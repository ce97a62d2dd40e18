package audit

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Auditor records analysis requests in a local sqlite database. Only
// request metadata and the scalar outcome are stored, never document text
// or findings.
type Auditor struct {
	db *sql.DB
}

type Entry struct {
	ID         int64     `json:"id"`
	AnalysisID string    `json:"analysis_id"`
	Endpoint   string    `json:"endpoint"`
	Filename   string    `json:"filename"`
	RiskLevel  string    `json:"risk_level"`
	RiskScore  int       `json:"risk_score"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewAuditor(dbPath string) *Auditor {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Printf("Failed to open audit DB: %v", err)
		return &Auditor{}
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS analysis_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		analysis_id TEXT,
		endpoint TEXT NOT NULL,
		filename TEXT,
		risk_level TEXT,
		risk_score INTEGER,
		error TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		log.Printf("Failed to create audit table: %v", err)
	}
	return &Auditor{db: db}
}

func (a *Auditor) Log(analysisID, endpoint, filename, riskLevel string, riskScore int, err error) {
	if a.db == nil {
		return
	}
	var errStr string
	if err != nil {
		errStr = err.Error()
	}
	_, err = a.db.Exec(
		"INSERT INTO analysis_log (analysis_id, endpoint, filename, risk_level, risk_score, error) VALUES (?, ?, ?, ?, ?, ?)",
		analysisID, endpoint, filename, riskLevel, riskScore, errStr,
	)
	if err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}

func (a *Auditor) GetLogs(limit int) ([]Entry, error) {
	if a.db == nil {
		return nil, nil
	}
	rows, err := a.db.Query("SELECT id, analysis_id, endpoint, filename, risk_level, risk_score, error, timestamp FROM analysis_log ORDER BY timestamp DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.AnalysisID, &e.Endpoint, &e.Filename, &e.RiskLevel, &e.RiskScore, &e.Error, &e.Timestamp); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a *Auditor) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
