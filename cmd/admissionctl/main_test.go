package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleLeads = []model.Lead{
	{ID: "b", Name: "Ravi, K", Phone: "9123456780", Source: "chat", CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
	{ID: "a", Name: "Asha", Phone: "9876543210", Source: "form", CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
}

func TestWriteLeads_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLeads(&buf, "csv", sampleLeads, 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,phone,source,session_id,created_at", lines[0])
	assert.Equal(t, `b,"Ravi, K",9123456780,chat,,2026-03-02T10:00:00Z`, lines[1])
}

func TestWriteLeads_JSONAndTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLeads(&buf, "json", sampleLeads, 7))
	var out struct {
		Leads []model.Lead `json:"leads"`
		Total int64        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.EqualValues(t, 7, out.Total)
	assert.Equal(t, "a", out.Leads[1].ID)

	buf.Reset()
	require.NoError(t, writeLeads(&buf, "table", sampleLeads, 7))
	assert.Contains(t, buf.String(), "2026-03-01 09:30")
	assert.Contains(t, buf.String(), "2 of 7")

	assert.Error(t, writeLeads(&buf, "xml", sampleLeads, 7))
}

func TestPrintCatalog_YAMLLoadsBack(t *testing.T) {
	kb := knowledge.Default()

	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, kb, "", false))

	var back knowledge.Base
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, len(kb.Courses), len(back.Courses))
	assert.Equal(t, kb.Courses[0].Title, back.Courses[0].Title)
	assert.Equal(t, kb.Courses[0].Aliases, back.Courses[0].Aliases)
}

func TestPrintCatalog_Section(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, knowledge.Default(), "faqs", true))

	var out map[string][]knowledge.FaqItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.NotEmpty(t, out["faqs"])

	assert.Error(t, printCatalog(&buf, knowledge.Default(), "alumni", false))
}
