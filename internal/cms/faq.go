package cms

// FAQ is one question on the FAQ page.
type FAQ struct {
	Category string
	Question string
	Answer   string
}

// FAQGroup is a category of questions rendered as one accordion.
type FAQGroup struct {
	Category string
	Items    []FAQ
}

var faqs = []FAQ{
	{
		Category: "Housing",
		Question: "What is the difference between SDA and SIL?",
		Answer:   "SDA funding pays for a home built for people with very high support needs. SIL funding pays for the support workers who help you day to day. Many residents have both.",
	},
	{
		Category: "Housing",
		Question: "Can I visit a property before applying?",
		Answer:   "Yes. We arrange a visit with you, your family or support coordinator so you can see the home and meet the people who live there.",
	},
	{
		Category: "Housing",
		Question: "Can I bring my own furniture?",
		Answer:   "Your bedroom is yours to furnish. Shared areas come furnished, and we can store larger items you would like to keep.",
	},
	{
		Category: "Funding",
		Question: "How much rent will I pay?",
		Answer:   "Most residents pay 25% of the Disability Support Pension plus any Commonwealth Rent Assistance they receive. Each listing shows the rent for that home.",
	},
	{
		Category: "Funding",
		Question: "What if SDA is not in my NDIS plan yet?",
		Answer:   "Talk to your support coordinator about a housing assessment. We can share information about our homes to support your request for a plan review.",
	},
	{
		Category: "Moving in",
		Question: "How are housemates matched?",
		Answer:   "We consider age, interests, routines and support needs, and current residents are always asked for their view before a new housemate is offered a room.",
	},
	{
		Category: "Moving in",
		Question: "How long does it take to move in?",
		Answer:   "Once funding is confirmed, most people move in within four to six weeks. We help with the paperwork, the move and setting up your supports.",
	},
}

// FAQs returns every question in display order.
func FAQs() []FAQ {
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}

// FAQGroups returns the questions grouped by category in first-seen order.
func FAQGroups() []FAQGroup {
	var groups []FAQGroup
	index := map[string]int{}
	for _, f := range faqs {
		i, ok := index[f.Category]
		if !ok {
			i = len(groups)
			index[f.Category] = i
			groups = append(groups, FAQGroup{Category: f.Category})
		}
		groups[i].Items = append(groups[i].Items, f)
	}
	return groups
}
