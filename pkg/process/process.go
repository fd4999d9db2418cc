// Package process detects running applications that conflict with a project cleanup.
//
// The check happens once, before any deletion. An application started after the
// check and before the cleanup is not detected.
package process

import (
	"context"
	"fmt"
	"path/filepath"

	ps "github.com/shirou/gopsutil/v4/process"
)

// Record is a snapshot of a running process
type Record struct {
	Name string
	Args []string
	PID  int32
}

// Lister enumerates running processes
type Lister interface {
	List(ctx context.Context) ([]Record, error)
}

// SystemLister lists processes from the operating system process table
type SystemLister struct{}

// List returns every process whose name could be read. Processes that exit
// during the scan or deny access are skipped.
func (SystemLister) List(ctx context.Context) ([]Record, error) {
	procs, err := ps.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	records := make([]Record, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		// Command lines of other users' processes are often unreadable
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			args = nil
		}

		records = append(records, Record{PID: p.Pid, Name: name, Args: args})
	}

	return records, nil
}

// Application names a conflicting application category
type Application string

const (
	// IDE is the code editor holding the generated solution
	IDE Application = "Visual Studio"
	// Editor is the engine editor holding the project
	Editor Application = "Unreal Editor"
)

// ConflictingProcessError reports an application that must be closed first
type ConflictingProcessError struct {
	Application Application
	Process     Record
}

func (e *ConflictingProcessError) Error() string {
	return fmt.Sprintf("%s is running (%s, pid %d)", e.Application, e.Process.Name, e.Process.PID)
}

// Scanner looks up running processes by name pattern
type Scanner struct {
	lister Lister
}

// NewScanner creates a scanner over lister, the system process table when nil
func NewScanner(lister Lister) *Scanner {
	if lister == nil {
		lister = SystemLister{}
	}
	return &Scanner{lister: lister}
}

// Find returns the first process matching pattern, or nil
func (s *Scanner) Find(ctx context.Context, pattern string) (*Record, error) {
	matches, err := s.find(ctx, []string{pattern}, true)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return &matches[0], nil
}

// FindAll returns every process matching any of patterns
func (s *Scanner) FindAll(ctx context.Context, patterns ...string) ([]Record, error) {
	return s.find(ctx, patterns, false)
}

func (s *Scanner) find(ctx context.Context, patterns []string, first bool) ([]Record, error) {
	matchers := make([]*Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		m, err := NewMatcher(pattern)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	records, err := s.lister.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Record
	for _, record := range records {
		for _, m := range matchers {
			if !m.Match(record.Name) {
				continue
			}
			matches = append(matches, record)
			if first {
				return matches, nil
			}
			break
		}
	}
	return matches, nil
}

// IDERunning returns the first IDE process found. Any instance counts as
// holding the project, whichever solution it has open.
func (s *Scanner) IDERunning(ctx context.Context, patterns []string) (*Record, error) {
	matches, err := s.find(ctx, patterns, true)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return &matches[0], nil
}

// EditorRunning returns the first editor process whose command line
// mentions the project file name
func (s *Scanner) EditorRunning(ctx context.Context, patterns []string, projectFile string) (*Record, error) {
	editors, err := s.FindAll(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	solution := filepath.Base(projectFile)
	for i := range editors {
		if ArgsContain(editors[i].Args, solution) {
			return &editors[i], nil
		}
	}
	return nil, nil
}

// CheckConflicts returns a ConflictingProcessError when the IDE or an editor
// holding projectFile is running
func (s *Scanner) CheckConflicts(
	ctx context.Context,
	idePatterns, editorPatterns []string,
	projectFile string,
) error {
	if len(idePatterns) > 0 {
		record, err := s.IDERunning(ctx, idePatterns)
		if err != nil {
			return err
		}
		if record != nil {
			return &ConflictingProcessError{Application: IDE, Process: *record}
		}
	}

	if len(editorPatterns) > 0 {
		record, err := s.EditorRunning(ctx, editorPatterns, projectFile)
		if err != nil {
			return err
		}
		if record != nil {
			return &ConflictingProcessError{Application: Editor, Process: *record}
		}
	}

	return nil
}
