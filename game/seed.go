package game

// DefaultQuestions is the built-in question set, used when no question
// file is configured.
func DefaultQuestions() []Quiz {
	return []Quiz{
		{
			ID:            1,
			Question:      "Which is the largest desert in the world?",
			Options:       []string{"Sahara", "Arabian Desert", "Gobi Desert", "Antarctic Desert"},
			CorrectOption: 4,
		},
		{
			ID:            2,
			Question:      "Which famous scientist developed the theory of relativity?",
			Options:       []string{"Isaac Newton", "Albert Einstein", "Nikola Tesla", "Galileo Galilei"},
			CorrectOption: 2,
		},
		{
			ID:            3,
			Question:      "Which city is known as the Big Apple?",
			Options:       []string{"Los Angeles", "New York", "Chicago", "Miami"},
			CorrectOption: 2,
		},
		{
			ID:            4,
			Question:      "What is the capital of Canada?",
			Options:       []string{"Ottawa", "Toronto", "Vancouver", "Montreal"},
			CorrectOption: 1,
		},
		{
			ID:            5,
			Question:      "Who wrote the play 'Romeo and Juliet'?",
			Options:       []string{"Charles Dickens", "William Shakespeare", "George Orwell", "Jane Austen"},
			CorrectOption: 2,
		},
		{
			ID:            6,
			Question:      "What is the chemical symbol for gold?",
			Options:       []string{"Au", "Ag", "Pb", "Fe"},
			CorrectOption: 1,
		},
	}
}
