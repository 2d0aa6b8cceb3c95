package tui

import (
	"strings"

	"github.com/andreaprogra/rapport-vocal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application : Rapport Vocal\n")
	b.WriteString("Version : ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date : ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit : ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("À PROPOS", b.String(), "esc: retour")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
