package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	textTemplate "text/template"

	"gopkg.in/yaml.v3"
)

//go:embed notify/*
var notifyTemplates embed.FS

// NotifyConfig holds contact-notification branding from config.yaml
type NotifyConfig struct {
	Branding struct {
		Name    string `yaml:"name"`
		Tagline string `yaml:"tagline"`
		Website string `yaml:"website"`
	} `yaml:"branding"`

	Design struct {
		PrimaryColor string `yaml:"primary_color"`
		TextColor    string `yaml:"text_color"`
		MutedColor   string `yaml:"muted_color"`
		LightBg      string `yaml:"light_bg"`
		BorderColor  string `yaml:"border_color"`
	} `yaml:"design"`

	Subjects struct {
		ContactForm string `yaml:"contact_form"`
	} `yaml:"subjects"`

	Contact struct {
		Intro     string `yaml:"intro"`
		ReplyHint string `yaml:"reply_hint"`
		NoEmail   string `yaml:"no_email"`
		NoPhone   string `yaml:"no_phone"`
	} `yaml:"contact"`
}

// LoadNotifyConfig loads the embedded notification config. When overridePath
// points at a file, that file is read instead so deployments can rebrand
// without rebuilding.
func LoadNotifyConfig(overridePath string) (*NotifyConfig, error) {
	var data []byte
	var err error

	if overridePath != "" {
		data, err = os.ReadFile(overridePath) // #nosec G304 -- path comes from operator config
		if err != nil {
			return nil, fmt.Errorf("failed to read notify config %s: %w", overridePath, err)
		}
	} else {
		data, err = notifyTemplates.ReadFile("notify/config.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read notify config: %w", err)
		}
	}

	var config NotifyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse notify config: %w", err)
	}

	return &config, nil
}

// ContactMessageData holds data for the contact notification templates
type ContactMessageData struct {
	// Submission data
	Name    string
	Phone   string
	Email   string
	Message string

	// Config-based data
	BrandName string
	Tagline   string
	Website   string
	Intro     string
	ReplyHint string

	// Design colors
	PrimaryColor string
	TextColor    string
	MutedColor   string
	LightBg      string
	BorderColor  string
}

// RenderContactHTML renders the contact notification HTML body
func RenderContactHTML(data ContactMessageData) (string, error) {
	tmplData, err := notifyTemplates.ReadFile("notify/contact.html")
	if err != nil {
		return "", fmt.Errorf("failed to read contact.html: %w", err)
	}

	tmpl, err := template.New("contact").Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse contact template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute contact template: %w", err)
	}

	return buf.String(), nil
}

// RenderContactText renders the contact notification plain text body
func RenderContactText(data ContactMessageData) (string, error) {
	tmplData, err := notifyTemplates.ReadFile("notify/contact.txt")
	if err != nil {
		return "", fmt.Errorf("failed to read contact.txt: %w", err)
	}

	tmpl, err := textTemplate.New("contact-text").Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse contact text template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute contact text template: %w", err)
	}

	return buf.String(), nil
}
