package export

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/lessonlab/quizforge/internal/quiz"
)

// WriteDoc renders the quiz as a Word-compatible HTML document and
// writes it to dir as "<title>.doc". Word opens HTML documents with
// this extension directly. Returns the written path.
func WriteDoc(q *quiz.GeneratedQuiz, dir string) (string, error) {
	path := filepath.Join(dir, docFilename(q.Title))
	if err := os.WriteFile(path, []byte(DocHTML(q)), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}

// DocHTML builds the document markup: centered title, a name line, the
// question sections, a page break, then the answer key.
func DocHTML(q *quiz.GeneratedQuiz) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"UTF-8\"></head>\n<body>\n")
	b.WriteString("<div style=\"margin: 0 auto; max-width: 800px;\">\n")
	fmt.Fprintf(&b, "<h1 style=\"text-align: center;\">%s</h1>\n", html.EscapeString(q.Title))
	b.WriteString("<p style=\"text-align: right; font-size: 16px;\">Name: __________________</p>\n")

	num := 1
	for c := quiz.CategoryComprehension; c <= quiz.CategoryShortAnswer; c++ {
		num = writeHTMLQuestions(&b, sectionHeadings[c], q.Category(c), num)
	}

	b.WriteString("<br clear=\"all\" style=\"page-break-before:always\" />\n")

	num = 1
	for c := quiz.CategoryComprehension; c <= quiz.CategoryShortAnswer; c++ {
		num = writeHTMLAnswers(&b, answerHeadings[c], q.Category(c), num)
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func writeHTMLQuestions(b *strings.Builder, heading string, questions []quiz.Question, num int) int {
	if len(questions) == 0 {
		return num
	}

	fmt.Fprintf(b, "<h2>%s</h2>\n", html.EscapeString(heading))
	for _, q := range questions {
		fmt.Fprintf(b, "<p><strong>%d. %s</strong></p>\n", num, html.EscapeString(q.Text))
		for i, opt := range q.Options {
			fmt.Fprintf(b, "<p style=\"margin-left: 20px;\">(%c) %s</p>\n", 'A'+i, html.EscapeString(opt))
		}
		b.WriteString("<br/>\n")
		num++
	}
	return num
}

func writeHTMLAnswers(b *strings.Builder, heading string, questions []quiz.Question, num int) int {
	if len(questions) == 0 {
		return num
	}

	fmt.Fprintf(b, "<h2>%s Answers &amp; Explanations</h2>\n", html.EscapeString(heading))
	for _, q := range questions {
		fmt.Fprintf(b, "<p><strong>%d. %s</strong></p>\n", num, html.EscapeString(q.Answer))
		if q.Explanation != "" {
			fmt.Fprintf(b, "<p style=\"margin-left: 20px; color: #555;\"><em>%s</em></p>\n", html.EscapeString(q.Explanation))
		}
		num++
	}
	return num
}

// docFilename sanitizes the quiz title into a safe file name.
func docFilename(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = quiz.DefaultTitle
	}
	// Strip path separators and characters Windows rejects.
	for _, r := range `/\:*?"<>|` {
		name = strings.ReplaceAll(name, string(r), "_")
	}
	return name + ".doc"
}
