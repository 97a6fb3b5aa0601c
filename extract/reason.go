package extract

import "fmt"

// Reason names why a workflow yielded no prompt. The empty Reason means
// extraction succeeded. Every traversal stage reports absence through one
// of these instead of an error; a failed file never aborts a batch.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonNoWorkflow      Reason = "no-workflow"
	ReasonNoSaveImage     Reason = "no-saveimage"
	ReasonNoSaveImageLink Reason = "no-saveimage-images-link"
	ReasonNoStartNode     Reason = "no-start-from-saveimage"
	ReasonNoPositive      Reason = "no-positive-found"
	ReasonNoClipEncode    Reason = "no-clip-encode-upstream"
	ReasonNoPrompt        Reason = "no-prompt-resolved"
)

// WrapError folds an unexpected fault into the reason vocabulary.
func WrapError(err error) Reason {
	return Reason(fmt.Sprintf("error:%v", err))
}
