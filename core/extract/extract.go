package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoTable is returned by [Rows] when the document contains no <table>
// element. Callers treat this as fatal: without a results table there is
// nothing to report on.
var ErrNoTable = errors.New("no results table found in document")

// expectedCells is the fixed column count of the results table:
// {selector placeholder, rank, agent, model, date, agent org, model org, accuracy}.
const expectedCells = 8

var (
	tableRe = regexp.MustCompile(`(?is)<table[^>]*>(.*?)</table>`)
	rowRe   = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	cellRe  = regexp.MustCompile(`(?is)<t[dh][^>]*>(.*?)</t[dh]>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)

	// accuracyRe matches cells like "75.1%± 2.4" or "60.7%± N/A".
	accuracyRe = regexp.MustCompile(`^([\d.]+)%±\s*([\d.]+|N/A)`)
)

// Entry is one parsed leaderboard row. ErrorMargin is nil when the table
// reported the margin as "N/A"; the JSON report serialises it as null.
type Entry struct {
	Rank        int      `json:"rank"`
	Agent       string   `json:"agent"`
	Model       string   `json:"model"`
	Date        string   `json:"date"`
	AgentOrg    string   `json:"agent_org"`
	ModelOrg    string   `json:"model_org"`
	Accuracy    float64  `json:"accuracy"`
	ErrorMargin *float64 `json:"error_margin"`
}

// Rows extracts the cell text of every data row in the first <table> block of
// doc. Matching is case-insensitive, non-greedy, and spans newlines. Nested
// tags are stripped from each cell and surrounding whitespace is trimmed.
//
// Header rows (second cell is the literal "Rank") and rows with fewer than two
// cells are silently skipped; they carry no data. Rows returns [ErrNoTable]
// when doc has no table at all. Calling Rows again on the same document yields
// an identical result.
func Rows(doc string) ([][]string, error) {
	table := tableRe.FindStringSubmatch(doc)
	if table == nil {
		return nil, ErrNoTable
	}

	var rows [][]string
	for _, row := range rowRe.FindAllStringSubmatch(table[1], -1) {
		var cells []string
		for _, cell := range cellRe.FindAllStringSubmatch(row[1], -1) {
			cells = append(cells, strings.TrimSpace(tagRe.ReplaceAllString(cell[1], "")))
		}
		if len(cells) < 2 || cells[1] == "Rank" {
			continue
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// ParseEntry converts one row's cell sequence into an [Entry]. It expects the
// fixed eight-column layout of the results table and the accuracy cell to
// match "<number>%±<number-or-N/A>". Any deviation yields an error describing
// the rejected row; the pipeline logs these at debug level and moves on.
func ParseEntry(cells []string) (Entry, error) {
	if len(cells) != expectedCells {
		return Entry{}, fmt.Errorf("expected %d cells, got %d", expectedCells, len(cells))
	}

	rank, err := strconv.Atoi(cells[1])
	if err != nil {
		return Entry{}, fmt.Errorf("unparseable rank %q: %w", cells[1], err)
	}
	if rank < 1 {
		return Entry{}, fmt.Errorf("rank must be positive, got %d", rank)
	}

	acc := accuracyRe.FindStringSubmatch(cells[7])
	if acc == nil {
		return Entry{}, fmt.Errorf("accuracy cell %q does not match <number>%%±<number|N/A>", cells[7])
	}
	accuracy, err := strconv.ParseFloat(acc[1], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("unparseable accuracy %q: %w", acc[1], err)
	}

	var margin *float64
	if acc[2] != "N/A" {
		m, err := strconv.ParseFloat(acc[2], 64)
		if err != nil {
			return Entry{}, fmt.Errorf("unparseable error margin %q: %w", acc[2], err)
		}
		margin = &m
	}

	return Entry{
		Rank:        rank,
		Agent:       cells[2],
		Model:       cells[3],
		Date:        cells[4],
		AgentOrg:    cells[5],
		ModelOrg:    cells[6],
		Accuracy:    accuracy,
		ErrorMargin: margin,
	}, nil
}
