package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	for _, topic := range []string{"ledger-format", "cost-basis", "readme"} {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q): %v", topic, err)
		}
		if !strings.HasPrefix(content, "# ") {
			t.Errorf("topic %q does not start with a title", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("does-not-exist"); err == nil {
		t.Error("GetTopic on an unknown topic succeeded, want error")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme listed as a topic")
		}
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}
}

func TestTopicsAreListedInReadme(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme): %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	for _, topic := range topics {
		if !strings.Contains(readme, topic+":") {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}
