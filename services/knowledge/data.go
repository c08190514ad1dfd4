package knowledge

// Default returns the built-in knowledge base. Each call returns a fresh copy.
func Default() *Base {
	return &Base{
		Courses:  defaultCourses(),
		Contacts: defaultContacts(),
		Faqs:     defaultFaqs(),
		General:  defaultGeneral(),
	}
}

func defaultCourses() []Course {
	return []Course{
		// Arts / Humanities
		{
			ID: "ba-gen", Title: "B.A. (Bachelor of Arts)", Department: "Arts / Humanities", Code: "BA101",
			Description:  "A foundational undergraduate degree offering a broad education in the humanities and social sciences.",
			Eligibility:  "10+2 or equivalent examination from a recognized board.",
			Duration:     "3 Years",
			Credits:      120,
			FeeStructure: map[string]int{"Annual Fee": 50000},
			Aliases:      []string{"b.a.", "ba", "bachelor of arts"},
		},
		{
			ID: "bfa", Title: "BFA (Bachelor of Fine Arts)", Department: "Arts / Humanities", Code: "BFA101",
			Description:  "A specialized degree for students aiming for a creative career in visual or performing arts.",
			Eligibility:  "10+2 or equivalent. Some universities may require a portfolio or entrance test.",
			Duration:     "4 Years",
			Credits:      160,
			FeeStructure: map[string]int{"Annual Fee": 75000},
			Aliases:      []string{"bfa", "fine arts"},
		},
		{
			ID: "bjmc", Title: "BJMC (Journalism & Mass Communication)", Department: "Arts / Humanities", Code: "BJMC101",
			Description:  "A program designed to equip students with the skills for a career in media, journalism, and public relations.",
			Eligibility:  "10+2 with a minimum of 50% marks. Entrance exam may be required.",
			Duration:     "3 Years",
			Credits:      130,
			FeeStructure: map[string]int{"Annual Fee": 90000},
			Aliases:      []string{"bjmc", "journalism", "mass communication"},
		},
		{
			ID: "ba-llb", Title: "BA LLB (Integrated Law)", Department: "Arts / Humanities", Code: "LAW101",
			Description:  "An integrated five-year program combining arts and law subjects, leading to a professional law degree.",
			Eligibility:  "10+2 or equivalent. Admission is typically through a national-level law entrance exam (e.g., CLAT).",
			Duration:     "5 Years",
			Credits:      200,
			FeeStructure: map[string]int{"Annual Fee": 150000},
			Aliases:      []string{"ba llb", "llb", "law"},
		},
		// Science
		{
			ID: "bsc-gen", Title: "B.Sc. (Bachelor of Science)", Department: "Science", Code: "BSC101",
			Description:  "A fundamental science degree with options to specialize in various scientific disciplines.",
			Eligibility:  "10+2 with a science stream (Physics, Chemistry, Biology/Maths) from a recognized board.",
			Duration:     "3 Years",
			Credits:      120,
			FeeStructure: map[string]int{"Annual Fee": 60000},
			Aliases:      []string{"b.sc.", "b.sc", "bsc", "bachelor of science"},
		},
		{
			ID: "btech-be", Title: "B.Tech / BE (Engineering)", Department: "Science", Code: "ENG101",
			Description:  "A professional engineering degree with specializations like Computer Science, Mechanical, Civil, and Electrical.",
			Eligibility:  "10+2 with Physics, Chemistry, and Mathematics (PCM). Admission is based on entrance exams like JEE Main.",
			Duration:     "4 Years",
			Credits:      180,
			FeeStructure: map[string]int{"Annual Fee": 180000},
			Aliases:      []string{"b.tech", "btech", "b.e.", "b.e", "engineering"},
		},
		{
			ID: "bca", Title: "BCA (Computer Applications)", Department: "Science", Code: "BCA101",
			Description:  "A three-year undergraduate program focused on computer science and its applications.",
			Eligibility:  "10+2 with Mathematics as a subject. Some universities may admit students from other streams.",
			Duration:     "3 Years",
			Credits:      140,
			FeeStructure: map[string]int{"Annual Fee": 85000},
			Aliases:      []string{"bca", "computer applications"},
		},
		{
			ID: "mbbs", Title: "MBBS (Medicine)", Department: "Science", Code: "MED101",
			Description:  "An undergraduate medical degree required to become a doctor of medicine.",
			Eligibility:  "10+2 with Physics, Chemistry, Biology (PCB). Admission is through the NEET UG entrance exam.",
			Duration:     "5.5 Years (including internship)",
			Credits:      250,
			FeeStructure: map[string]int{"Annual Fee": 500000},
			Aliases:      []string{"mbbs", "medicine"},
		},
		{
			ID: "bds", Title: "BDS (Dentistry)", Department: "Science", Code: "DEN101",
			Description:  "An undergraduate degree for students who want to pursue a career in dentistry.",
			Eligibility:  "10+2 with PCB. Admission is through the NEET UG entrance exam.",
			Duration:     "5 Years (including internship)",
			Credits:      220,
			FeeStructure: map[string]int{"Annual Fee": 350000},
			Aliases:      []string{"bds", "dentistry"},
		},
		{
			ID: "bpharm", Title: "B.Pharm (Pharmacy)", Department: "Science", Code: "PHM101",
			Description:  "A four-year program that prepares students for roles in the pharmaceutical industry, drug research, and medical dispensing.",
			Eligibility:  "10+2 with PCB or PCM stream. Pharmacy entrance exams may be required.",
			Duration:     "4 Years",
			Credits:      170,
			FeeStructure: map[string]int{"Annual Fee": 120000},
			Aliases:      []string{"b.pharm", "bpharm", "pharmacy"},
		},
		// Commerce / Management
		{
			ID: "bcom", Title: "B.Com (Bachelor of Commerce)", Department: "Commerce / Management", Code: "BCOM101",
			Description:  "An undergraduate degree in commerce and related subjects, providing a strong foundation in business and finance.",
			Eligibility:  "10+2 with commerce stream or equivalent.",
			Duration:     "3 Years",
			Credits:      120,
			FeeStructure: map[string]int{"Annual Fee": 55000},
			Aliases:      []string{"b.com", "bcom", "commerce"},
		},
		{
			ID: "bba", Title: "BBA (Business Administration)", Department: "Commerce / Management", Code: "BBA101",
			Description:  "A bachelor's degree that provides a broad understanding of business principles and management functions.",
			Eligibility:  "10+2 from any stream. Some universities conduct entrance tests.",
			Duration:     "3 Years",
			Credits:      130,
			FeeStructure: map[string]int{"Annual Fee": 95000},
			Aliases:      []string{"bba", "business administration"},
		},
		// Professional
		{
			ID: "bhm", Title: "BHM (Hotel Management)", Department: "General / Professional", Code: "BHM101",
			Description:  "A degree program that prepares students for a career in the hospitality industry, including hotels, resorts, and restaurants.",
			Eligibility:  "10+2 from any stream. Admission often based on entrance exams like NCHMCT JEE.",
			Duration:     "4 Years",
			Credits:      160,
			FeeStructure: map[string]int{"Annual Fee": 130000},
			Aliases:      []string{"bhm", "hotel management"},
		},
		{
			ID: "bdes", Title: "B.Des (Fashion Designing)", Department: "General / Professional", Code: "BDES101",
			Description:  "A creative degree focusing on the art and business of fashion design, from concept to production.",
			Eligibility:  "10+2 from any stream. A portfolio and entrance exam (like NID/NIFT) are typically required.",
			Duration:     "4 Years",
			Credits:      160,
			FeeStructure: map[string]int{"Annual Fee": 160000},
			Aliases:      []string{"b.des", "bdes", "fashion design", "fashion designing"},
		},
	}
}

func defaultContacts() []Contact {
	return []Contact{
		{ID: "1", Name: "Dr. Priya Sharma", Title: "Head of Admissions", Department: "Admissions Office", Email: "p.sharma@university.ac.in", Phone: "+91 98765 43210", AvatarID: "contact-1"},
		{ID: "2", Name: "Mr. Rajesh Kumar", Title: "Financial Aid Advisor", Department: "Financial Aid Office", Email: "r.kumar@university.ac.in", Phone: "+91 98765 43211", AvatarID: "contact-2"},
		{ID: "3", Name: "Dr. Anjali Singh", Title: "Dean of Engineering", Department: "Engineering Department", Email: "a.singh@university.ac.in", Phone: "+91 98765 43212", AvatarID: "contact-3"},
		{ID: "4", Name: "Prof. Vikram Mehta", Title: "Head of Management Studies", Department: "Management Department", Email: "v.mehta@university.ac.in", Phone: "+91 98765 43213", AvatarID: "contact-4"},
	}
}

func defaultFaqs() []FaqItem {
	return []FaqItem{
		{ID: "faq1", Question: "What are the application deadlines?", Answer: "The application deadline for the main session is typically in April. Please check the official websites for JEE, NEET, or the university for exact dates."},
		{ID: "faq2", Question: "What documents are required for admission?", Answer: "You will need to submit your Class 10th and 12th mark sheets, a valid photo ID (like Aadhar), passport-sized photographs, and category certificate (if applicable)."},
		{ID: "faq3", Question: "Is there an application fee?", Answer: "Yes, application fees vary by examination and university. Fee waivers are often available for reserved categories as per government norms."},
		{ID: "faq4", Question: "Can I apply for scholarships?", Answer: "Absolutely. We offer merit-based and need-based scholarships. Additionally, students can apply for various government scholarships through the National Scholarship Portal."},
		{ID: "faq5", Question: "What are the on-campus housing options?", Answer: "We offer separate hostel facilities for boys and girls with options for AC and non-AC rooms. Mess facilities provide a variety of Indian cuisine."},
	}
}

func defaultGeneral() GeneralInfo {
	return GeneralInfo{
		ApplicationDeadlines: Deadlines{Fall: "April 30th", Spring: "November 30th"},
		RequiredDocuments: []string{
			"Class 10th Marksheet",
			"Class 12th Marksheet",
			"Aadhar Card",
			"Passport-sized photographs",
			"Category Certificate (if applicable)",
		},
		ApplicationSteps: []string{
			"Register online on the official portal.",
			"Fill out the application form with correct details.",
			"Upload scanned copies of required documents.",
			"Pay the application fee online.",
			"Download and print the confirmation page.",
		},
		Fees:         "Tuition fees vary by course. Please ask about a specific course for detailed fee information. Hostel fees are ₹60,000 per year, and bus fees are ₹20,000 per year. These fees are subject to revision.",
		HostelFee:    60000,
		BusFees:      map[string]int{"All routes": 20000},
		Eligibility:  "Eligibility criteria vary by course. Generally, applicants must have passed the Class 12 (or equivalent) examination. Specific stream requirements (like PCM for Engineering or PCB for Medical) and minimum percentage criteria apply for most programs. Admission may also be based on national-level entrance exams.",
		Facilities:   "Our campus boasts state-of-the-art facilities, including modern laboratories, a 24/7 library, a sports complex with cricket and football grounds, multiple canteens, and student common rooms. High-speed Wi-Fi is available across the entire campus.",
		Scholarships: "The university offers merit-based and need-based scholarships. Students can also apply for various government scholarships. For more details, please check the university's official website or contact the financial aid office.",
	}
}
