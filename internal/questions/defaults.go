package questions

import "github.com/jonathan/personality-quiz/internal/types"

// Defaults returns the stock question set in serving order. Each call returns
// a fresh slice so callers cannot mutate the bank.
func Defaults() []types.Question {
	return []types.Question{
		{
			ID:   "q1",
			Text: "When solving a puzzle, what do you prefer?",
			Options: []string{
				"Finding patterns and solving it step by step",
				"Trying different creative solutions",
				"Working with friends to solve it together",
				"Using my imagination to think outside the box",
			},
			Category: types.CategoryAnalytical,
		},
		{
			ID:   "q2",
			Text: "How do you like to learn new things?",
			Options: []string{
				"Reading books and researching facts",
				"Drawing, painting, or making things",
				"Talking and sharing ideas with others",
				"Moving around and trying hands-on activities",
			},
			Category: types.CategoryAnalytical,
		},
		{
			ID:   "q3",
			Text: "What sounds most fun to you?",
			Options: []string{
				"Building something with blocks or coding",
				"Creating art, music, or stories",
				"Playing games with friends",
				"Exploring nature or trying new sports",
			},
			Category: types.CategoryCreative,
		},
		{
			ID:   "q4",
			Text: "When you have free time, you like to:",
			Options: []string{
				"Play strategy games or solve riddles",
				"Draw, write, or make crafts",
				"Chat with friends or help others",
				"Play outside or dance to music",
			},
			Category: types.CategoryCreative,
		},
		{
			ID:   "q5",
			Text: "If you could design your dream room, it would have:",
			Options: []string{
				"A computer, books, and science experiments",
				"Art supplies, musical instruments, and colorful decorations",
				"Space for friends to hang out and play games",
				"Sports equipment and lots of room to move",
			},
			Category: types.CategoryCreative,
		},
		{
			ID:   "q6",
			Text: "At school, you most enjoy:",
			Options: []string{
				"Math, science, or computer class",
				"Art, music, or drama class",
				"Group projects and presentations",
				"PE, recess, or field trips",
			},
			Category: types.CategorySocial,
		},
		{
			ID:   "q7",
			Text: "When a friend is sad, you:",
			Options: []string{
				"Try to solve their problem logically",
				"Make them a card or drawing",
				"Talk to them and listen carefully",
				"Suggest doing something fun together",
			},
			Category: types.CategorySocial,
		},
		{
			ID:   "q8",
			Text: "Which superpower would you choose?",
			Options: []string{
				"Super intelligence",
				"Ability to create anything I imagine",
				"Reading minds and understanding feelings",
				"Super speed and strength",
			},
			Category: types.CategorySocial,
		},
		{
			ID:   "q9",
			Text: "Your perfect day would include:",
			Options: []string{
				"Learning something new and interesting",
				"Creating a masterpiece",
				"Hanging out with lots of friends",
				"Being active and adventurous",
			},
			Category: types.CategoryActive,
		},
		{
			ID:   "q10",
			Text: "You learn best when you can:",
			Options: []string{
				"See charts, diagrams, and explanations",
				"Use my imagination and creativity",
				"Discuss and share with others",
				"Touch, build, and do things myself",
			},
			Category: types.CategoryActive,
		},
		{
			ID:   "q11",
			Text: "In group activities, you usually:",
			Options: []string{
				"Come up with the plan and strategy",
				"Add creative ideas and make it fun",
				"Make sure everyone feels included",
				"Lead the action and keep things moving",
			},
			Category: types.CategoryLeader,
		},
		{
			ID:   "q12",
			Text: "What motivates you most?",
			Options: []string{
				"Solving difficult challenges",
				"Making something beautiful or unique",
				"Helping others and making friends",
				"Winning and achieving goals",
			},
			Category: types.CategoryLeader,
		},
		{
			ID:   "q13",
			Text: "You prefer stories that are:",
			Options: []string{
				"Mysteries or science fiction",
				"Fantasy or adventure",
				"About friendships and feelings",
				"Action-packed and exciting",
			},
			Category: types.CategoryAnalytical,
		},
		{
			ID:   "q14",
			Text: "When you see something new, you:",
			Options: []string{
				"Want to know how it works",
				"Imagine all the cool things you could do with it",
				"Wonder who made it and why",
				"Want to try it out right away",
			},
			Category: types.CategoryAnalytical,
		},
		{
			ID:   "q15",
			Text: "You express yourself best through:",
			Options: []string{
				"Writing or explaining things clearly",
				"Art, music, or performance",
				"Talking and sharing stories",
				"Actions and demonstrations",
			},
			Category: types.CategoryCreative,
		},
		{
			ID:   "q16",
			Text: "What would you like to be famous for?",
			Options: []string{
				"An amazing invention or discovery",
				"Creating beautiful art or entertainment",
				"Helping lots of people",
				"Achieving something incredible",
			},
			Category: types.CategoryLeader,
		},
		{
			ID:   "q17",
			Text: "You prefer to work:",
			Options: []string{
				"Alone, so I can focus deeply",
				"Alone, but sharing my work with others",
				"With a partner or small group",
				"In a big team with lots of energy",
			},
			Category: types.CategorySocial,
		},
		{
			ID:   "q18",
			Text: "What makes you happiest?",
			Options: []string{
				"Understanding something complex",
				"Creating something from my imagination",
				"Making others smile",
				"Accomplishing a challenging task",
			},
			Category: types.CategorySocial,
		},
		{
			ID:   "q19",
			Text: "Your ideal vacation would be:",
			Options: []string{
				"Visiting museums and historical sites",
				"Going to art galleries and concerts",
				"Beach or theme park with friends",
				"Camping, hiking, or exploring new places",
			},
			Category: types.CategoryActive,
		},
		{
			ID:   "q20",
			Text: "Which describes you best?",
			Options: []string{
				"Thoughtful and logical",
				"Creative and imaginative",
				"Friendly and caring",
				"Energetic and brave",
			},
			Category: types.CategoryActive,
		},
	}
}
