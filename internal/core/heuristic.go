package core

import (
	"strings"
)

// heuristicTrigger maps a keyword set to a canned screen template.
// Trigger order is fixed and determines output screen order.
type heuristicTrigger struct {
	name     string
	keywords []string
	screen   func() Screen
}

var heuristicTriggers = []heuristicTrigger{
	{
		name:     "login",
		keywords: []string{"login"},
		screen: func() Screen {
			return Screen{
				Name: "Login Screen",
				Components: []Component{
					{Type: ComponentTextField, Label: "Email", Placeholder: "Enter email"},
					{Type: ComponentTextField, Label: "Password", Placeholder: "Enter password", Secure: true},
					{Type: ComponentButton, Label: "Sign In", Style: "primary"},
					{Type: ComponentLink, Label: "Forgot Password?", Action: "reset_password"},
					{Type: ComponentButton, Label: "Create Account", Style: "secondary"},
				},
			}
		},
	},
	{
		name:     "signup",
		keywords: []string{"signup", "register"},
		screen: func() Screen {
			return Screen{
				Name: "Signup Screen",
				Components: []Component{
					{Type: ComponentTextField, Label: "First Name", Placeholder: "Enter first name"},
					{Type: ComponentTextField, Label: "Last Name", Placeholder: "Enter last name"},
					{Type: ComponentTextField, Label: "Email", Placeholder: "Enter email"},
					{Type: ComponentTextField, Label: "Password", Placeholder: "Enter password", Secure: true},
					{Type: ComponentButton, Label: "Create Account", Style: "primary"},
				},
			}
		},
	},
	{
		name:     "payment",
		keywords: []string{"payment", "checkout"},
		screen: func() Screen {
			return Screen{
				Name: "Payment Screen",
				Components: []Component{
					{Type: ComponentButtonGroup, Options: []string{"Bank", "Paypal", "Stripe", "Cash"}},
					{Type: ComponentButton, Label: "Proceed", Style: "primary"},
				},
			}
		},
	},
	{
		name:     "confirmation",
		keywords: []string{"confirmation", "success"},
		screen: func() Screen {
			return Screen{
				Name: "Confirmation Screen",
				Components: []Component{
					{Type: ComponentText, Label: "Payment Successful"},
					{Type: ComponentText, Label: "Paid: $950"},
					{Type: ComponentButton, Label: "Return to Home", Style: "primary"},
				},
			}
		},
	},
}

// GenerateHeuristicWireframe infers screens by case-insensitive
// keyword matching against the input text. Pure function: no backend
// calls, never fails. No matching triggers produces an empty screens
// list, which is a valid answer.
func GenerateHeuristicWireframe(text string) (*WireframeModel, []string) {
	lower := strings.ToLower(text)

	model := &WireframeModel{Screens: []Screen{}}
	var matched []string

	for _, trigger := range heuristicTriggers {
		for _, kw := range trigger.keywords {
			if strings.Contains(lower, kw) {
				model.Screens = append(model.Screens, trigger.screen())
				matched = append(matched, trigger.name)
				break
			}
		}
	}

	return model, matched
}
