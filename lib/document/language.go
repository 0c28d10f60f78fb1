// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// LanguageID resolves the language identifier to tag rendered code
// blocks with. The snapshot's own language id wins when the host set
// one; otherwise the file name is matched against chroma's lexer
// registry, falling back to content analysis of the first lines.
// Returns "" when nothing matches — an untagged fence is better than
// a wrong tag.
func LanguageID(snapshot Snapshot) string {
	if id := snapshot.LanguageID(); id != "" {
		return id
	}

	if lexer := lexers.Match(snapshot.Path()); lexer != nil {
		return fenceTag(lexer)
	}

	sample := analysisSample(snapshot)
	if sample == "" {
		return ""
	}
	if lexer := lexers.Analyse(sample); lexer != nil {
		return fenceTag(lexer)
	}
	return ""
}

// analysisSampleLines bounds how much content is handed to chroma's
// content analysers. They only look at leading material (shebangs,
// preludes), so a short prefix is enough.
const analysisSampleLines = 20

func analysisSample(snapshot Snapshot) string {
	lineCount := snapshot.LineCount()
	if lineCount > analysisSampleLines {
		lineCount = analysisSampleLines
	}
	var builder strings.Builder
	for i := 0; i < lineCount; i++ {
		builder.WriteString(snapshot.Line(i))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// fenceTag returns the identifier to use in a fenced code block's info
// string. Chroma's aliases are the lowercase short names markdown
// renderers expect ("go", "py"); the display name ("Go", "Python") is
// the fallback.
func fenceTag(lexer chroma.Lexer) string {
	config := lexer.Config()
	if config == nil {
		return ""
	}
	if len(config.Aliases) > 0 {
		return config.Aliases[0]
	}
	return strings.ToLower(config.Name)
}
