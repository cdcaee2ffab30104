package gitlog

import (
	"strconv"
	"strings"
	"time"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/schema"
)

// binaryMarker is what numstat emits for binary files in place of counts.
const binaryMarker = "-"

// ParseLog turns raw delimited log text into commit records in a single
// linear pass. Every line containing the delimiter token starts a new
// record; any other non-empty line is treated as a numstat line belonging
// to the current record. Malformed stat lines and binary-file markers are
// skipped, never fatal. The second return value is the set of author
// emails observed in the headers.
func ParseLog(raw string) ([]schema.Commit, map[string]struct{}) {
	var commits []schema.Commit
	var current *schema.Commit
	seenEmails := make(map[string]struct{})

	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, contract.SepToken) {
			if current != nil {
				commits = append(commits, *current)
			}
			current = parseHeader(line, seenEmails)
			continue
		}
		if strings.TrimSpace(line) == "" || current == nil {
			continue
		}
		if fc, ok := parseStatLine(line); ok {
			current.Files = append(current.Files, fc)
			current.Added += fc.Added
			current.Deleted += fc.Deleted
		}
	}
	if current != nil {
		commits = append(commits, *current)
	}
	return commits, seenEmails
}

// parseHeader splits a delimiter-bearing line into hash, subject, date and
// author email. Missing trailing fields stay empty; a date that does not
// parse stays zero.
func parseHeader(line string, seenEmails map[string]struct{}) *schema.Commit {
	parts := strings.Split(line, contract.SepToken)
	c := &schema.Commit{Hash: parts[0]}
	if len(parts) > 1 {
		c.Subject = parts[1]
	}
	if len(parts) > 2 {
		if d, err := time.Parse(contract.DateFormat, strings.TrimSpace(parts[2])); err == nil {
			c.Date = d
		}
	}
	if len(parts) > 3 {
		c.AuthorEmail = strings.TrimSpace(parts[3])
		if c.AuthorEmail != "" {
			seenEmails[c.AuthorEmail] = struct{}{}
		}
	}
	return c
}

// parseStatLine parses one "added\tdeleted\tpath" numstat line. Binary
// markers and any malformed shape are rejected.
func parseStatLine(line string) (schema.FileChange, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return schema.FileChange{}, false
	}
	addStr, delStr, path := parts[0], parts[1], parts[2]
	if addStr == binaryMarker || delStr == binaryMarker || path == "" {
		return schema.FileChange{}, false
	}
	added, err := strconv.Atoi(addStr)
	if err != nil || added < 0 {
		return schema.FileChange{}, false
	}
	deleted, err := strconv.Atoi(delStr)
	if err != nil || deleted < 0 {
		return schema.FileChange{}, false
	}
	return schema.FileChange{Path: path, Added: added, Deleted: deleted}, true
}
