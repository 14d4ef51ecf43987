package domain

type Tone string

const (
	ToneInfo  Tone = "info"
	ToneOK    Tone = "ok"
	ToneError Tone = "error"
)

func (t Tone) String() string {
	return string(t)
}

// Status is the single notification line. An empty message hides it.
type Status struct {
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
}

func (s Status) Visible() bool {
	return s.Message != ""
}

func InfoStatus(message string) Status {
	return Status{Message: message, Tone: ToneInfo}
}

func OKStatus(message string) Status {
	return Status{Message: message, Tone: ToneOK}
}

func ErrorStatus(message string) Status {
	return Status{Message: message, Tone: ToneError}
}
