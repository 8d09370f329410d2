package ui

import tea "github.com/charmbracelet/bubbletea"

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isRefresh(msg tea.KeyMsg) bool {
	return isKey(msg, "r", "f5")
}
