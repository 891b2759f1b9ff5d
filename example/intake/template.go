package main

import "github.com/monjil99/intakeagent/form"

// sampleTemplate is a department-of-health intake questionnaire with both
// explicit branch rules and content the heuristic skip rules recognize.
func sampleTemplate() *form.Template {
	tmpl := &form.Template{
		ID:           "broomfield-health-arf",
		Name:         "Broomfield Department of Health",
		Organization: "Broomfield Department of Health",
		Description:  "Assistance request intake",
		Questions: []form.Question{
			{
				ID: "q1", Order: 1, Required: true,
				Prompt:  "Do you currently have a court case?",
				Kind:    form.KindSingleChoice,
				Choices: []string{"Yes", "No"},
			},
			{
				ID: "q2", Order: 2, Required: true,
				Prompt:  "Referral source to Court",
				Kind:    form.KindMultiChoice,
				Choices: []string{"Court Case", "Police", "Walk In", "Phone", "Website", "Word of Mouth", "Other"},
				Branch:  &form.BranchRule{Op: form.BranchEquals, QuestionOrder: 1, Value: "yes"},
			},
			{
				ID: "q3", Order: 3, Required: true,
				Prompt:  "Juvenile or Adult?",
				Kind:    form.KindSingleChoice,
				Choices: []string{"Juvenile", "Adult"},
				HelpText: "Juvenile means under 18 years old. Different services and legal protections apply to minors versus adults.",
			},
			{
				ID: "q4", Order: 4, Required: true,
				Prompt: "What is your first name?",
				Kind:   form.KindFreeText,
			},
			{
				ID: "q5", Order: 5, Required: true,
				Prompt: "What is your last name?",
				Kind:   form.KindFreeText,
			},
			{
				ID: "q6", Order: 6, Required: true,
				Prompt: "What is your email address?",
				Kind:   form.KindEmail,
			},
			{
				ID: "q7", Order: 7, Required: true,
				Prompt: "What is your phone number?",
				Kind:   form.KindPhone,
			},
			{
				ID: "q8", Order: 8, Required: true,
				Prompt: "What is your date of birth?",
				Kind:   form.KindDate,
			},
			{
				ID: "q9", Order: 9, Required: true,
				Prompt:  "Do you have a history of substance abuse?",
				Kind:    form.KindSingleChoice,
				Choices: []string{"Yes", "No"},
			},
			{
				ID: "q10", Order: 10, Required: true,
				Prompt:  "What is your drug of choice?",
				Kind:    form.KindMultiChoice,
				Choices: []string{"Marijuana", "Methamphetamine", "Cocaine", "Opioids", "Hallucinogens", "Barbiturates", "Other"},
				Branch:  &form.BranchRule{Op: form.BranchEquals, QuestionOrder: 9, Value: "yes"},
			},
			{
				ID: "q11", Order: 11, Required: true,
				Prompt: "What city do you live in?",
				Kind:   form.KindFreeText,
			},
			{
				ID: "q12", Order: 12, Required: false,
				Prompt: "Additional comments",
				Kind:   form.KindFreeText,
			},
		},
	}
	tmpl.SortQuestions()
	return tmpl
}
