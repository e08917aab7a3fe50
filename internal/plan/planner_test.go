package plan

import (
	"strings"
	"testing"
)

func TestPlanMapsEpisodeList(t *testing.T) {
	blueprint := Blueprint{
		Episodes: []Episode{
			{Title: "重逢", Summary: "林晚晴回国", RAGQuery: "机场 重逢", StyleQuery: "克制 冷冽"},
			{Title: "对峙", Synopsis: "董事会摊牌", Tone: "紧张"},
		},
	}
	tasks := Plan(blueprint)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	first := tasks[0]
	if first.EpisodeNumber != 1 || first.Title != "重逢" {
		t.Fatalf("unexpected first task: %+v", first)
	}
	if first.ContentQuery != "机场 重逢" || first.StyleQuery != "克制 冷冽" {
		t.Fatalf("explicit queries not honoured: %+v", first)
	}
	second := tasks[1]
	if second.EpisodeNumber != 2 {
		t.Fatalf("expected number 2, got %d", second.EpisodeNumber)
	}
	if second.Synopsis != "董事会摊牌" {
		t.Fatalf("synopsis fallback failed: %+v", second)
	}
	if second.ContentQuery != "董事会摊牌" {
		t.Fatalf("content query should fall back to synopsis: %+v", second)
	}
	if second.StyleQuery != "紧张" {
		t.Fatalf("style query should fall back to tone: %+v", second)
	}
}

func TestPlanFallsBackThroughBeats(t *testing.T) {
	blueprint := Blueprint{
		Episodes: []Episode{
			{Beats: StringList{"开场", "反转"}},
		},
	}
	tasks := Plan(blueprint)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Title != "第1集" {
		t.Fatalf("expected placeholder title, got %q", task.Title)
	}
	if task.Synopsis != "开场；反转" {
		t.Fatalf("expected joined beats, got %q", task.Synopsis)
	}
	if task.ContentQuery != task.Synopsis || task.StyleQuery != task.Synopsis {
		t.Fatalf("queries should fall back to synopsis: %+v", task)
	}
}

func TestPlanEmptyEpisodeEntryUsesPlaceholders(t *testing.T) {
	tasks := Plan(Blueprint{Episodes: []Episode{{}}})
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Title != "第1集" || task.Synopsis != "第1集剧情待补全" {
		t.Fatalf("placeholders missing: %+v", task)
	}
	if task.ContentQuery == "" || task.StyleQuery == "" {
		t.Fatalf("queries must never be empty: %+v", task)
	}
}

func TestPlanSynthesizesSingleTaskFromOutline(t *testing.T) {
	outline := strings.Repeat("长", 250)
	blueprint := Blueprint{Title: "都市", Outline: outline, StyleKeywords: StringList{"冷峻"}}
	tasks := Plan(blueprint)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.EpisodeNumber != 1 || task.Title != "都市" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if got := len([]rune(task.Synopsis)); got != 200 {
		t.Fatalf("outline preview should cap at 200 runes, got %d", got)
	}
	if task.StyleQuery != "冷峻" {
		t.Fatalf("style query should use style keywords, got %q", task.StyleQuery)
	}
}

func TestPlanEmptyBlueprint(t *testing.T) {
	tasks := Plan(Blueprint{})
	if len(tasks) != 1 {
		t.Fatalf("planner must always produce a task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Synopsis != "自动生成集任务" || task.Title != "第1集" {
		t.Fatalf("unexpected placeholder task: %+v", task)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	blueprint := Blueprint{Episodes: []Episode{{Title: "A", Summary: "a"}, {Title: "B", Summary: "b"}}}
	first := Plan(blueprint)
	second := Plan(blueprint)
	if len(first) != len(second) {
		t.Fatalf("task counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("task %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestParseBlueprintStringListShapes(t *testing.T) {
	data := []byte(`{
		"title": "都市",
		"style_keywords": "冷峻",
		"episodes": [
			{"title": "重逢", "beats": ["开场", "反转"]},
			{"title": "对峙", "beats": "摊牌"}
		]
	}`)
	blueprint, err := ParseBlueprint(data)
	if err != nil {
		t.Fatalf("ParseBlueprint returned error: %v", err)
	}
	if blueprint.StyleKeywords.Join() != "冷峻" {
		t.Fatalf("string keyword not accepted: %+v", blueprint.StyleKeywords)
	}
	if blueprint.Episodes[0].Beats.Join() != "开场；反转" {
		t.Fatalf("array beats not accepted: %+v", blueprint.Episodes[0].Beats)
	}
	if blueprint.Episodes[1].Beats.Join() != "摊牌" {
		t.Fatalf("string beats not accepted: %+v", blueprint.Episodes[1].Beats)
	}
}

func TestParseBlueprintKeepsModelEpisodeNumbers(t *testing.T) {
	data := []byte(`{
		"title": "都市",
		"episodes": [
			{"episode_number": 7, "title": "重逢", "summary": "多年后旧人相认。"}
		]
	}`)
	blueprint, err := ParseBlueprint(data)
	if err != nil {
		t.Fatalf("ParseBlueprint returned error: %v", err)
	}
	if blueprint.Episodes[0].EpisodeNumber != 7 {
		t.Fatalf("episode_number dropped: %+v", blueprint.Episodes[0])
	}
	tasks := Plan(blueprint)
	if tasks[0].EpisodeNumber != 7 {
		t.Fatalf("planner replaced supplied episode number: %+v", tasks[0])
	}
}

func TestParseBlueprintRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseBlueprint([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}
