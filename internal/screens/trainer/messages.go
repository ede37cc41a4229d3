package trainer

import (
	tr "github.com/abhisek/scaletrainer/internal/trainer"
)

// nextQuestionMsg is delivered when the feedback delay after an answer has
// elapsed. The Pending decides whether it is still current.
type nextQuestionMsg struct {
	Pending tr.Pending
}
