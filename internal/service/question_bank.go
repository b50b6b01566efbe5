package service

import (
	"edu_agent_backend/internal/model"
	"fmt"
)

// Template problems cycle through the three problem types so a fallback
// worksheet still resembles a generated one.

var templateProblemKinds = []string{"multiple_choice", "short_answer", "problem_solving"}

func templateProblems(subject, topic string, count, difficulty int) []model.WorksheetProblem {
	problems := make([]model.WorksheetProblem, 0, count)
	for i := 0; i < count; i++ {
		kind := templateProblemKinds[i%len(templateProblemKinds)]
		problems = append(problems, templateProblem(i+1, kind, subject, topic, difficulty))
	}
	return problems
}

func templateProblem(id int, kind, subject, topic string, difficulty int) model.WorksheetProblem {
	switch kind {
	case "multiple_choice":
		return model.WorksheetProblem{
			ID:   id,
			Type: kind,
			Question: fmt.Sprintf(
				"Which statement about %s is correct?", topic),
			Options: []string{
				fmt.Sprintf("It is a core concept in %s", subject),
				"It is unrelated to this unit",
				"It only applies in special cases",
				"None of the above",
			},
			CorrectAnswer: fmt.Sprintf("It is a core concept in %s", subject),
			Explanation: fmt.Sprintf(
				"Review the definition of %s and check each option against it.", topic),
			TimeMinutes: 2 + difficulty,
		}
	case "short_answer":
		return model.WorksheetProblem{
			ID:   id,
			Type: kind,
			Question: fmt.Sprintf(
				"In your own words, explain what %s means and give one situation where it applies.", topic),
			Explanation: fmt.Sprintf(
				"A complete answer defines %s and connects it to a concrete example from %s.", topic, subject),
			TimeMinutes: 3 + difficulty,
		}
	default:
		return model.WorksheetProblem{
			ID:   id,
			Type: "problem_solving",
			Question: fmt.Sprintf(
				"Solve a level-%d problem involving %s. Write out every step of your solution.", difficulty, topic),
			SolutionSteps: []string{
				"Identify what the problem is asking for",
				fmt.Sprintf("Recall the relevant %s method", topic),
				"Apply the method step by step",
				"Check the result against the original question",
			},
			Explanation: "Compare your steps with the outline and find where your approach differs.",
			TimeMinutes: 5 + difficulty,
		}
	}
}
