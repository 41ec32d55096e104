// Package markdown renders staff-entered ticket remarks to sanitized HTML.
// Remarks are sanitized at write time so downstream receipt and screen
// rendering can trust the stored value.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type RemarkRenderer interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
}

type remarkRendererImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRemarkRenderer() RemarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	// Remarks are short operational notes; the UGC policy is enough.
	policy := bluemonday.UGCPolicy()

	return &remarkRendererImpl{
		md:     md,
		policy: policy,
	}
}

func (s *remarkRendererImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert remark to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *remarkRendererImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *remarkRendererImpl) ToHTMLSanitized(markdown string) (string, error) {
	rendered, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.Sanitize(rendered), nil
}
