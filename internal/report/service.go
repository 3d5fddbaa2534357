package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectx47612-beep/Test-Reports/internal/analysis"
	"github.com/projectx47612-beep/Test-Reports/internal/extract"
)

// Service runs the full pipeline for one document at a time: acquisition,
// lab-value analysis, and summary generation. Documents are processed
// synchronously and independently; a failure on one never affects the next.
type Service struct {
	maxFileSize int64
	acquirer    *extract.Acquirer
	analyzer    *analysis.Analyzer
}

// Result is the outcome of processing one document.
type Result struct {
	// Name is the document's filename.
	Name string
	// Content is the acquired text, tables, and source strategy.
	Content extract.ExtractedContent
	// Records are the recognized tests in rule-table order.
	Records analysis.AnalysisResult
	// Summary is the advisory narrative for the records.
	Summary string
}

// NewService creates a pipeline service over the given rule table and
// acquirer.
func NewService(maxFileSize int64, rules *analysis.Ruleset, acquirer *extract.Acquirer) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		acquirer:    acquirer,
		analyzer:    analysis.NewAnalyzer(rules),
	}
}

// ProcessFile reads a report file from disk and processes it.
func (s *Service) ProcessFile(path string) (*Result, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() > s.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), s.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return s.Process(extract.RawDocument{Data: data, Name: filepath.Base(path)})
}

// Process runs acquisition and analysis over in-memory document bytes. The
// returned error is non-nil only for unsupported formats; extraction
// failures surface as an empty result with StrategyNone.
func (s *Service) Process(doc extract.RawDocument) (*Result, error) {
	content, err := s.acquirer.Acquire(doc)
	if err != nil {
		return nil, err
	}

	records := s.analyzer.Analyze(content.Text)

	return &Result{
		Name:    doc.Name,
		Content: content,
		Records: records,
		Summary: analysis.Summarize(records),
	}, nil
}

// ExtractTables returns the structured rows of a PDF document for consumers
// that need column structure rather than flattened text.
func (s *Service) ExtractTables(doc extract.RawDocument) ([]extract.TableRow, error) {
	return s.acquirer.ExtractTables(doc)
}
