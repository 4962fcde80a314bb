package seo

import (
	"encoding/json"
	"html/template"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// encoding/json escapes <, > and & so the output is safe inside a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script returns v serialized for a <script type="application/ld+json"> body.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL, phone, email string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if phone != "" || email != "" {
		cp := map[string]any{
			"@type":       "ContactPoint",
			"contactType": "customer service",
			"areaServed":  Country,
		}
		if phone != "" {
			cp["telephone"] = phone
		}
		if email != "" {
			cp["email"] = email
		}
		m["contactPoint"] = cp
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Article returns a minimal Article schema payload.
func Article(headline, description, url, imageURL, authorName, datePublished, dateModified string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Article",
		"headline": headline,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Organization", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	if dateModified != "" {
		m["dateModified"] = dateModified
	}
	return m
}

// Question is one FAQ entry for FAQPage.
type Question struct {
	Name   string
	Answer string
}

// FAQPage builds schema.org FAQPage from question/answer pairs.
func FAQPage(questions []Question) map[string]any {
	el := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  q.Name,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  q.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}
