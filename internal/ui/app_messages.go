package ui

// ShowAddServiceMsg opens the add-service dialog (trigger click or SPC s a).
type ShowAddServiceMsg struct{}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// ToggleSidebarMsg flips the sidebar open flag (SPC b).
type ToggleSidebarMsg struct{}

// NavigateMsg is sent when a sidebar button is pressed.
type NavigateMsg struct {
	Section string // data-value of the pressed button
}
