package store

import "telehealth-server/internal/models"

// AuthMode selects the form shown by the auth modal.
type AuthMode string

const (
	AuthModeSignIn AuthMode = "signin"
	AuthModeSignUp AuthMode = "signup"
)

// UIState is the set of independent presentation flags of a session.
type UIState struct {
	IsAuthModalOpen        bool             `json:"isAuthModalOpen"`
	IsChatModalOpen        bool             `json:"isChatModalOpen"`
	IsAppointmentModalOpen bool             `json:"isAppointmentModalOpen"`
	AuthMode               AuthMode         `json:"authMode"`
	SelectedDoctorID       *string          `json:"selectedDoctorId"`
	SelectedSpecialty      models.Specialty `json:"selectedSpecialty"`
	SearchQuery            string           `json:"searchQuery"`
}

// DefaultUIState is the state of a fresh session.
func DefaultUIState() UIState {
	return UIState{AuthMode: AuthModeSignIn, SelectedSpecialty: models.SpecialtyAll}
}

// UIPatch carries the flags to change; nil fields are left alone.
// ClearSelectedDoctor resets the selected doctor to none.
type UIPatch struct {
	IsAuthModalOpen        *bool             `json:"isAuthModalOpen"`
	IsChatModalOpen        *bool             `json:"isChatModalOpen"`
	IsAppointmentModalOpen *bool             `json:"isAppointmentModalOpen"`
	AuthMode               *AuthMode         `json:"authMode" binding:"omitempty,oneof=signin signup"`
	SelectedDoctorID       *string           `json:"selectedDoctorId"`
	ClearSelectedDoctor    bool              `json:"clearSelectedDoctor"`
	SelectedSpecialty      *models.Specialty `json:"selectedSpecialty"`
	SearchQuery            *string           `json:"searchQuery"`
}

func (s *Store) UI() UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uiLocked()
}

func (s *Store) uiLocked() UIState {
	ui := s.ui
	if ui.SelectedDoctorID != nil {
		id := *ui.SelectedDoctorID
		ui.SelectedDoctorID = &id
	}
	return ui
}

// UpdateUI applies p and returns the resulting state.
func (s *Store) UpdateUI(p UIPatch) UIState {
	s.mu.Lock()
	if p.IsAuthModalOpen != nil {
		s.ui.IsAuthModalOpen = *p.IsAuthModalOpen
	}
	if p.IsChatModalOpen != nil {
		s.ui.IsChatModalOpen = *p.IsChatModalOpen
	}
	if p.IsAppointmentModalOpen != nil {
		s.ui.IsAppointmentModalOpen = *p.IsAppointmentModalOpen
	}
	if p.AuthMode != nil {
		s.ui.AuthMode = *p.AuthMode
	}
	if p.ClearSelectedDoctor {
		s.ui.SelectedDoctorID = nil
	} else if p.SelectedDoctorID != nil {
		id := *p.SelectedDoctorID
		s.ui.SelectedDoctorID = &id
	}
	if p.SelectedSpecialty != nil {
		s.ui.SelectedSpecialty = *p.SelectedSpecialty
	}
	if p.SearchQuery != nil {
		s.ui.SearchQuery = *p.SearchQuery
	}
	ui := s.uiLocked()
	s.mu.Unlock()

	s.publish(EventUI)
	return ui
}
