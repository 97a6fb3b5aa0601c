package client

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/EnragedAntelope/PromptExtract/graphapi"
)

// PromptHistoryItem is one finished generation from the server's
// execution history, with its workflow graph reconstructed.
type PromptHistoryItem struct {
	PromptID string
	Index    int
	Graph    *graphapi.Graph
}

// Each history entry stores its prompt as a positional array:
//
//	[0] index      int
//	[1] promptID   string
//	[2] prompt     api-format node map (ignored, it has no graph layout)
//	[3] extra_data object; the workflow graph is in extra_pnginfo.workflow
//	[4] outputs    node ids with outputs
type internalHistoryItem struct {
	Prompt []json.RawMessage `json:"prompt"`
}

func historyItemFromInternal(promptID string, ph internalHistoryItem) (*PromptHistoryItem, error) {
	if len(ph.Prompt) < 4 {
		return nil, fmt.Errorf("history item %s: short prompt record", promptID)
	}

	var index int
	if err := json.Unmarshal(ph.Prompt[0], &index); err != nil {
		return nil, fmt.Errorf("history item %s: %w", promptID, err)
	}

	var extra struct {
		ExtraPngInfo struct {
			Workflow *graphapi.Graph `json:"workflow"`
		} `json:"extra_pnginfo"`
	}
	if err := json.Unmarshal(ph.Prompt[3], &extra); err != nil {
		return nil, fmt.Errorf("history item %s: %w", promptID, err)
	}
	if extra.ExtraPngInfo.Workflow == nil {
		return nil, fmt.Errorf("history item %s: no embedded workflow", promptID)
	}

	return &PromptHistoryItem{
		PromptID: promptID,
		Index:    index,
		Graph:    extra.ExtraPngInfo.Workflow,
	}, nil
}

func (c *ComfyClient) getHistory(url string) (map[string]internalHistoryItem, error) {
	resp, err := c.httpclient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	history := make(map[string]internalHistoryItem)
	if err := json.Unmarshal(body, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// GetPromptHistory retrieves every history item the server still holds,
// ordered by execution index. Items without a reconstructable workflow
// are skipped.
func (c *ComfyClient) GetPromptHistory() ([]PromptHistoryItem, error) {
	history, err := c.getHistory(fmt.Sprintf("http://%s/history", c.serverBaseAddress))
	if err != nil {
		return nil, err
	}

	retv := make([]PromptHistoryItem, 0, len(history))
	for id, ph := range history {
		item, err := historyItemFromInternal(id, ph)
		if err != nil {
			continue
		}
		retv = append(retv, *item)
	}

	// ComfyUI does not recalculate the indices of history items, so they
	// may not be ordered 0..n; sort explicitly.
	sort.Slice(retv, func(i, j int) bool {
		return retv[i].Index < retv[j].Index
	})
	return retv, nil
}

// GetHistoryItem retrieves a single history entry by prompt ID. Returns
// nil when the server no longer holds the entry.
func (c *ComfyClient) GetHistoryItem(promptID string) (*PromptHistoryItem, error) {
	history, err := c.getHistory(fmt.Sprintf("http://%s/history/%s", c.serverBaseAddress, promptID))
	if err != nil {
		return nil, err
	}

	ph, ok := history[promptID]
	if !ok {
		return nil, nil
	}
	return historyItemFromInternal(promptID, ph)
}
