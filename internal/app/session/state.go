package session

import "voice-notes/internal/app/model"

// ActionType enumerates the state transitions.
type ActionType int

const (
	SetTranslations ActionType = iota + 1
	AddTranslation
	SetRecording
	SetTranslating
	UpdateTranslation
	RemoveTranslation
	SetError
	ClearError
)

var actionNames = map[ActionType]string{
	SetTranslations:   "set_translations",
	AddTranslation:    "add_translation",
	SetRecording:      "set_recording",
	SetTranslating:    "set_translating",
	UpdateTranslation: "update_translation",
	RemoveTranslation: "remove_translation",
	SetError:          "set_error",
	ClearError:        "clear_error",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// State is what a client of the session renders.
type State struct {
	Translations    []model.TranslationRecord `json:"translations"`
	IsRecording     bool                      `json:"isRecording"`
	IsTranslating   bool                      `json:"isTranslating"`
	LastTranslation *model.TranslationRecord  `json:"lastTranslation,omitempty"`
	Error           string                    `json:"error,omitempty"`
}

// Action is one transition request. Only the field matching Type is read.
type Action struct {
	Type         ActionType
	Translations []model.TranslationRecord
	Translation  *model.TranslationRecord
	ID           int64
	Flag         bool
	Message      string
}

// Reduce returns the state after applying a. It never mutates s; unknown
// actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case SetTranslations:
		s.Translations = cloneRecords(a.Translations)
	case AddTranslation:
		if a.Translation == nil {
			return s
		}
		rec := *a.Translation
		list := make([]model.TranslationRecord, 0, len(s.Translations)+1)
		list = append(list, rec)
		s.Translations = append(list, s.Translations...)
		s.LastTranslation = &rec
	case SetRecording:
		s.IsRecording = a.Flag
	case SetTranslating:
		s.IsTranslating = a.Flag
	case UpdateTranslation:
		if a.Translation == nil {
			return s
		}
		list := cloneRecords(s.Translations)
		for i := range list {
			if list[i].ID == a.Translation.ID {
				list[i] = *a.Translation
			}
		}
		s.Translations = list
	case RemoveTranslation:
		list := make([]model.TranslationRecord, 0, len(s.Translations))
		for _, r := range s.Translations {
			if r.ID != a.ID {
				list = append(list, r)
			}
		}
		s.Translations = list
	case SetError:
		s.Error = a.Message
	case ClearError:
		s.Error = ""
	}
	return s
}

func cloneRecords(in []model.TranslationRecord) []model.TranslationRecord {
	if in == nil {
		return []model.TranslationRecord{}
	}
	out := make([]model.TranslationRecord, len(in))
	copy(out, in)
	return out
}
