package service

// RolePool holds the question texts available for a single role, keyed by
// category.
type RolePool struct {
	Technical    []string
	Behavioral   []string
	SystemDesign []string
}

// QuestionBank is the static pool of interview questions: role-specific pools
// plus generic behavioral and general pools shared across roles.
type QuestionBank struct {
	roles             map[string]RolePool
	generalBehavioral []string
	general           []string
}

func NewQuestionBank() *QuestionBank {
	return &QuestionBank{
		roles: map[string]RolePool{
			"Software Engineer": {
				Technical: []string{
					"Explain the difference between let, const, and var in JavaScript.",
					"What is the time complexity of binary search?",
					"How would you implement a debounce function?",
					"Explain the concept of closures in JavaScript.",
					"What are the differences between SQL and NoSQL databases?",
					"How do you handle memory leaks in JavaScript applications?",
					"Explain the difference between synchronous and asynchronous programming.",
					"What is the purpose of indexing in databases?",
				},
				Behavioral: []string{
					"Tell me about a challenging project you worked on.",
					"How do you handle tight deadlines?",
					"Describe a time when you had to learn a new technology quickly.",
					"How do you approach debugging a complex issue?",
					"Tell me about a time when you disagreed with a team member.",
					"How do you stay updated with new technologies?",
					"Describe your experience working in an agile environment.",
					"How do you prioritize tasks when everything seems urgent?",
				},
				SystemDesign: []string{
					"Design a URL shortening service like bit.ly.",
					"How would you design a chat application?",
					"Design a system to handle user authentication.",
					"How would you design a caching system?",
					"Design a file storage system like Dropbox.",
					"How would you design a notification system?",
				},
			},
			"Frontend Developer": {
				Technical: []string{
					"What is the virtual DOM and how does it work?",
					"Explain the difference between CSS Grid and Flexbox.",
					"How do you optimize web page performance?",
					"What are Web Components?",
					"Explain the concept of progressive web apps.",
					"How do you handle cross-browser compatibility?",
					"What is server-side rendering vs client-side rendering?",
					"Explain CSS specificity and how it works.",
				},
				Behavioral: []string{
					"How do you ensure your code is accessible?",
					"Describe your approach to responsive design.",
					"How do you handle browser compatibility issues?",
					"Tell me about a time you improved user experience.",
					"How do you collaborate with designers?",
					"Describe your testing approach for frontend code.",
					"How do you handle performance optimization?",
					"What's your process for code reviews?",
				},
			},
			"Data Scientist": {
				Technical: []string{
					"Explain the bias-variance tradeoff.",
					"What is overfitting and how do you prevent it?",
					"Difference between supervised and unsupervised learning.",
					"How do you handle missing data in a dataset?",
					"Explain the concept of feature engineering.",
					"What is cross-validation and why is it important?",
					"Explain different types of machine learning algorithms.",
					"How do you evaluate model performance?",
				},
				Behavioral: []string{
					"How do you communicate complex findings to non-technical stakeholders?",
					"Describe a challenging data problem you solved.",
					"How do you ensure data quality?",
					"Tell me about a time your analysis led to a business decision.",
					"How do you stay current with data science trends?",
					"Describe your approach to exploratory data analysis.",
					"How do you handle conflicting requirements from stakeholders?",
					"Tell me about a project where you had to work with messy data.",
				},
			},
		},
		generalBehavioral: []string{
			"Tell me about yourself.",
			"Why are you interested in this role?",
			"What are your strengths and weaknesses?",
			"Where do you see yourself in 5 years?",
			"Why are you leaving your current job?",
			"What motivates you?",
			"How do you handle stress?",
			"Describe your ideal work environment.",
		},
		general: []string{
			"What interests you about our company?",
			"How do you handle criticism?",
			"What's your greatest professional achievement?",
			"How do you approach learning new skills?",
			"What kind of work environment do you thrive in?",
			"How do you handle conflicts at work?",
			"What questions do you have for us?",
		},
	}
}

// RolePool returns the pools for a role. Unknown roles get empty pools, which
// degrades question selection gracefully instead of failing.
func (b *QuestionBank) RolePool(role string) RolePool {
	return b.roles[role]
}

func (b *QuestionBank) GeneralBehavioral() []string {
	return b.generalBehavioral
}

func (b *QuestionBank) General() []string {
	return b.general
}

// BehavioralPool is the union of the role-specific behavioral pool and the
// generic behavioral pool.
func (b *QuestionBank) BehavioralPool(role string) []string {
	rolePool := b.roles[role]
	pool := make([]string, 0, len(rolePool.Behavioral)+len(b.generalBehavioral))
	pool = append(pool, rolePool.Behavioral...)
	pool = append(pool, b.generalBehavioral...)
	return pool
}
