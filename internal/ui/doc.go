// Package ui is the signup desk terminal UI built on Bubble Tea.
//
// Core pieces:
//   - SidebarProvider: the shared open flag every sidebar component reads
//   - DesktopSidebar / MobileSidebar: the two renderers of the sidebar body
//   - SidebarButton: icon plus label, label hidden while collapsed
//   - AddServiceModal: the dialog for a new service's duration, name and price
//   - OverlayStack: modals drawn centered above the page
//   - KeyHandler: global keys and SPC leader sequences
package ui
