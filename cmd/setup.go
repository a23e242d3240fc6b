package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dhabedank/prd-analyzer/internal/llm"
	"github.com/dhabedank/prd-analyzer/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var resetConfig bool

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long: `Configure prd-analyzer with an interactive wizard.

The wizard helps you select:
- Backend: which LLM service runs the pipeline (Gemini, Anthropic, Ollama)
- Model: the model within that backend

Configuration is saved to ~/.prd-analyzer.yaml`,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
}

// setupConfig holds the configuration being built.
type setupConfig struct {
	Backend string `yaml:"backend,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// backendModels lists the selectable models per backend.
var backendModels = map[string][]setupItem{
	"gemini": {
		{id: "gemini-1.5-flash", desc: "Fast and cheap, good default"},
		{id: "gemini-1.5-pro", desc: "Stronger reasoning, higher cost"},
		{id: "gemini-2.0-flash", desc: "Newer flash generation"},
	},
	"anthropic": {
		{id: "claude-sonnet-4-20250514", desc: "Balanced quality and cost"},
		{id: "claude-3-5-haiku-20241022", desc: "Fastest and cheapest"},
	},
	"ollama": {
		{id: "deepseek-coder-v2", desc: "Local, code-oriented"},
		{id: "llama3", desc: "Local, general purpose"},
	},
}

func runSetup(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Handle reset
	if resetConfig {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		fmt.Printf("  Removed: %s\n", configPath)
		return nil
	}

	// Show which backends look usable right now
	available := llm.ListAvailableBackends(llm.DefaultConfig())
	if len(available) == 0 {
		fmt.Println(tui.WarningStyle.Render("!") + " No backend detected - set GEMINI_API_KEY or ANTHROPIC_API_KEY, or start Ollama")
	}

	// Run the wizard
	p := tea.NewProgram(newSetupModel(available))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled {
		fmt.Println("Setup cancelled")
		return nil
	}

	config := setupConfig{
		Backend: finalModel.selections[0],
		Model:   finalModel.selections[1],
	}

	if err := saveConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration saved to " + configPath)
	fmt.Println()
	fmt.Printf("  Backend: %s\n", tui.ModelStyle.Render(config.Backend))
	fmt.Printf("  Model:   %s\n", tui.ModelStyle.Render(config.Model))

	return nil
}

func getConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".prd-analyzer.yaml"
	}
	return filepath.Join(home, ".prd-analyzer.yaml")
}

func saveConfig(path string, config setupConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	step       int // 0=backend, 1=model
	lists      []list.Model
	selections []string
	available  []string
	cancelled  bool
	width      int
	height     int
}

type setupItem struct {
	id   string
	desc string
}

func (i setupItem) Title() string       { return i.id }
func (i setupItem) Description() string { return i.desc }
func (i setupItem) FilterValue() string { return i.id }

func newSetupModel(available []string) setupModel {
	availSet := make(map[string]bool, len(available))
	for _, a := range available {
		availSet[a] = true
	}

	items := make([]list.Item, 0, len(llm.KnownBackends))
	for _, b := range llm.KnownBackends {
		desc := b.Description
		if availSet[b.ID] {
			desc += " (detected)"
		}
		items = append(items, setupItem{id: b.ID, desc: desc})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#9b59b6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	backendList := list.New(items, delegate, 60, 14)
	backendList.Title = "Select Backend"
	backendList.SetShowStatusBar(false)
	backendList.SetFilteringEnabled(false)
	backendList.Styles.Title = tui.TitleStyle

	// The model list is populated once a backend is chosen.
	modelList := list.New(nil, delegate, 60, 14)
	modelList.Title = "Select Model"
	modelList.SetShowStatusBar(false)
	modelList.SetFilteringEnabled(false)
	modelList.Styles.Title = tui.TitleStyle

	return setupModel{
		step:       0,
		lists:      []list.Model{backendList, modelList},
		selections: make([]string, 2),
		available:  available,
	}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.lists {
			m.lists[i].SetWidth(msg.Width)
			m.lists[i].SetHeight(msg.Height - 4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.lists[m.step].SelectedItem().(setupItem); ok {
				m.selections[m.step] = item.id
			}

			if m.step == 0 {
				// Populate the model list for the chosen backend
				models := backendModels[m.selections[0]]
				items := make([]list.Item, len(models))
				for i, mi := range models {
					items[i] = mi
				}
				m.lists[1].SetItems(items)
			}

			m.step++
			if m.step >= 2 {
				return m, tea.Quit
			}
			return m, nil

		case "left", "h":
			if m.step > 0 {
				m.step--
			}
			return m, nil
		}
	}

	// Update current list
	var cmd tea.Cmd
	m.lists[m.step], cmd = m.lists[m.step].Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}

	// Progress indicator
	steps := []string{"Backend", "Model"}
	progress := "\n  "
	for i, s := range steps {
		if i == m.step {
			progress += tui.SelectedStyle.Render(fmt.Sprintf("[%s]", s))
		} else if i < m.step {
			progress += tui.SuccessStyle.Render(fmt.Sprintf("✓ %s", s))
		} else {
			progress += tui.UnselectedStyle.Render(fmt.Sprintf("○ %s", s))
		}
		if i < len(steps)-1 {
			progress += " → "
		}
	}
	progress += "\n\n"

	// Help text
	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • ←: back • q: quit")

	return progress + m.lists[m.step].View() + help
}
