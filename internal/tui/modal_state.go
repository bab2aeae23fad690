package tui

type ModalType int

const (
	ModalNone ModalType = iota
	ModalTaskCreate
	ModalTaskEdit
	ModalTaskDelete
	ModalSetup
	ModalSearch
	ModalSettings
)

// ModalManager tracks which overlay owns the keyboard.
type ModalManager struct {
	current ModalType
	// taskID is the subject of edit and delete modals.
	taskID int64
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) Open(t ModalType, taskID int64) {
	m.current = t
	m.taskID = taskID
}

func (m *ModalManager) Close() {
	m.current = ModalNone
	m.taskID = 0
}

func (m *ModalManager) IsOpen() bool {
	return m.current != ModalNone
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current == t
}

func (m *ModalManager) ActiveModal() ModalType {
	return m.current
}

func (m *ModalManager) TaskID() int64 {
	return m.taskID
}
