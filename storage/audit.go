package storage

import (
	"log"
	"os"
	"sync"
	"time"

	goccy "github.com/goccy/go-json"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
)

const (
	AuditEventReset     = "RESET"
	AuditEventHit       = "HIT"
	AuditEventDestroyed = "LIMBS_DESTROYED"
	AuditEventEmpty     = "BODY_EMPTY"
)

// AuditLogger appends combat events to a file as JSON lines.
type AuditLogger struct {
	mu   sync.Mutex
	file *os.File
	enc  *goccy.Encoder
}

// AuditData is the interface for typed audit event data.
type AuditData interface {
	auditData()
}

// AuditEntry represents a single audit log line.
type AuditEntry struct {
	Time  string    `json:"time"`
	Body  string    `json:"body"`
	Event string    `json:"event"`
	Data  AuditData `json:"data"`
}

// AuditReset is logged when a body is built fresh from a blueprint.
type AuditReset struct {
	Blueprint string  `json:"blueprint"`
	Limbs     int     `json:"limbs"`
	Integrity float64 `json:"integrity"`
}

func (AuditReset) auditData() {}

// AuditHit is logged for every resolved attack.
type AuditHit struct {
	Damage  anatomy.Damage `json:"damage"`
	Limb    string         `json:"limb"`
	Parts   []string       `json:"parts"`
	Applied anatomy.Damage `json:"applied"`
}

func (AuditHit) auditData() {}

// AuditLimbsDestroyed is logged when an attack removes limbs, in removal order.
type AuditLimbsDestroyed struct {
	Limbs []string `json:"limbs"`
}

func (AuditLimbsDestroyed) auditData() {}

// AuditBodyEmpty is logged once a body has no limbs left.
type AuditBodyEmpty struct {
	Blueprint string `json:"blueprint"`
}

func (AuditBodyEmpty) auditData() {}

// NewAuditLogger opens path for appending.
func NewAuditLogger(path string) (*AuditLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, seaofstars.WithStack(err)
	}
	return &AuditLogger{
		file: f,
		enc:  goccy.NewEncoder(f),
	}, nil
}

// Log writes an entry for body and flushes it to disk.
// Panics if encoding fails, which means a typed AuditData is broken.
func (a *AuditLogger) Log(body, event string, data AuditData) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.enc.Encode(AuditEntry{
		Time:  time.Now().UTC().Format(time.RFC3339Nano),
		Body:  body,
		Event: event,
		Data:  data,
	}); err != nil {
		log.Panicf("audit log encode failed: %v", err)
	}
	if err := a.file.Sync(); err != nil {
		log.Printf("audit log sync failed: %v", err)
	}
}

// LogResult logs the events following from one attack on body.
func (a *AuditLogger) LogResult(body, blueprint string, damage anatomy.Damage, result *anatomy.DamageResult, empty bool) {
	hit := AuditHit{
		Damage:  damage,
		Limb:    result.Limb,
		Applied: result.Applied(),
	}
	for _, h := range result.Hits {
		if !h.Overflow {
			hit.Parts = append(hit.Parts, h.PartName)
		}
	}
	a.Log(body, AuditEventHit, hit)
	if len(result.Destroyed) > 0 {
		a.Log(body, AuditEventDestroyed, AuditLimbsDestroyed{Limbs: result.Destroyed})
	}
	if empty {
		a.Log(body, AuditEventEmpty, AuditBodyEmpty{Blueprint: blueprint})
	}
}

// Close closes the audit log file.
func (a *AuditLogger) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return seaofstars.WithStack(a.file.Close())
}
