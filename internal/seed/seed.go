// Package seed loads the site owner's CV content into an empty
// database. Records are matched on their natural keys, so running the
// seed repeatedly never duplicates data.
package seed

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func datePtr(year int, month time.Month, day int) *datatypes.Date {
	d := date(year, month, day)
	return &d
}

func intPtr(v int) *int { return &v }

// Run inserts all seed content. Existing records under the same
// natural key are left untouched.
func Run(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"personal info", personalInfo},
		{"site settings", siteSettings},
		{"education", education},
		{"experience", experience},
		{"skills", skills},
		{"projects", projects},
		{"certificates", certificates},
	}
	for _, step := range steps {
		if err := step.fn(db); err != nil {
			return appErr.Wrap(err, appErr.CodeInternal, "seed "+step.name+" failed")
		}
		logger.L().Info("seeded", zap.String("step", step.name))
	}
	return nil
}

func personalInfo(db *gorm.DB) error {
	return db.Where(models.PersonalInfo{Name: "Okan Kantar"}).
		FirstOrCreate(&models.PersonalInfo{
			Name:        "Okan Kantar",
			Title:       "Software Team Lead",
			Bio:         "Software developer building creative solutions with modern technologies, specialized in C#, Python, JavaScript and the Django and React stacks",
			AboutText:   "Hello! I'm Okan Kantar, a full stack developer with a passion for technology.\n\nI started my career in the public sector as a budget and accounting specialist, then moved into software development, where I now lead a development team.\n\nI specialize in C# .NET, Python Django, JavaScript and modern web technologies. My combined background in finance and technology helps me understand complex business processes and turn them into effective solutions.",
			BirthYear:   1989,
			Location:    "Ankara, Turkey",
			Email:       "okkant@gmail.com",
			Phone:       "0539 315 6407",
			LinkedinURL: "https://www.linkedin.com/in/okan-kantar/",
			GithubURL:   "https://github.com/okan-kantar",
		}).Error
}

func siteSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.SiteSettings{
		SiteTitle:       "Okan Kantar - Full Stack Developer",
		SiteDescription: "Software developer building creative solutions with modern technologies, specialized in C#, Python, JavaScript and the Django and React stacks",
		MetaKeywords:    "Okan Kantar, Full Stack Developer, C#, Python, Django, React, JavaScript, Ankara",
		FooterText:      "© 2024 Okan Kantar. All rights reserved.",
		HeroTitle:       "Hi, I'm Okan Kantar",
		HeroSubtitle:    "Software Team Lead & Full Stack Developer",
		HeroDescription: "Software developer building creative solutions with modern technologies, specialized in C#, Python, JavaScript and the Django and React stacks",
	}).Error
}

func education(db *gorm.DB) error {
	entries := []models.Education{
		{
			Degree:     models.DegreeMaster,
			School:     "Hacettepe University",
			Department: "Finance",
			StartYear:  2019,
			EndYear:    intPtr(2021),
			Location:   "Ankara",
			Order:      1,
		},
		{
			Degree:     models.DegreeBachelor,
			School:     "Gazi University",
			Department: "Economics",
			StartYear:  2006,
			EndYear:    intPtr(2011),
			Location:   "Ankara",
			Order:      2,
		},
	}
	for i := range entries {
		err := db.Where(models.Education{School: entries[i].School, Department: entries[i].Department}).
			FirstOrCreate(&entries[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func experience(db *gorm.DB) error {
	entries := []models.Experience{
		{
			Position:    "Software Team Lead",
			Company:     "Agriculture and Rural Development Support Institution",
			Location:    "Ankara, Turkey",
			StartDate:   date(2024, time.December, 1),
			IsCurrent:   true,
			Description: "Leading the software development team with responsibility for project management, code quality and team coordination.",
			Order:       1,
		},
		{
			Position:    "Software Development Specialist",
			Company:     "Agriculture and Rural Development Support Institution",
			Location:    "Ankara, Turkey",
			StartDate:   date(2022, time.December, 1),
			EndDate:     datePtr(2024, time.December, 1),
			Description: "Developed full stack web applications using C# .NET, Python Django and modern JavaScript technologies.",
			Order:       2,
		},
		{
			Position:    ".NET Software Expertise Instructor",
			Company:     "Vektorel Academy",
			Location:    "Ankara, Turkey",
			StartDate:   date(2021, time.June, 1),
			EndDate:     datePtr(2022, time.November, 30),
			Description: "Taught C# .NET technologies, covering MVC, Entity Framework and modern web development.",
			Order:       3,
		},
	}
	for i := range entries {
		err := db.Where(models.Experience{
			Position:  entries[i].Position,
			Company:   entries[i].Company,
			StartDate: entries[i].StartDate,
		}).FirstOrCreate(&entries[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func skills(db *gorm.DB) error {
	entries := []models.Skill{
		{Name: "C#", Category: models.SkillProgramming, Level: 90, IconClass: "fas fa-code", IsFeatured: true, Order: 1},
		{Name: "Python", Category: models.SkillProgramming, Level: 85, IconClass: "fab fa-python", IsFeatured: true, Order: 2},
		{Name: "JavaScript", Category: models.SkillProgramming, Level: 80, IconClass: "fab fa-js", IsFeatured: true, Order: 3},
		{Name: "TypeScript", Category: models.SkillProgramming, Level: 75, IconClass: "fab fa-js", Order: 4},
		{Name: "SQL", Category: models.SkillProgramming, Level: 85, IconClass: "fas fa-database", IsFeatured: true, Order: 5},

		{Name: "Django", Category: models.SkillFramework, Level: 85, IconClass: "fab fa-python", IsFeatured: true, Order: 1},
		{Name: ".NET Framework", Category: models.SkillFramework, Level: 90, IconClass: "fas fa-code", IsFeatured: true, Order: 2},
		{Name: "React", Category: models.SkillFramework, Level: 75, IconClass: "fab fa-react", IsFeatured: true, Order: 3},
		{Name: "ASP.NET MVC", Category: models.SkillFramework, Level: 88, IconClass: "fas fa-code", Order: 4},
		{Name: "Entity Framework", Category: models.SkillFramework, Level: 85, IconClass: "fas fa-database", Order: 5},

		{Name: "Microsoft SQL Server", Category: models.SkillDatabase, Level: 85, IconClass: "fas fa-database", Order: 1},
		{Name: "PostgreSQL", Category: models.SkillDatabase, Level: 80, IconClass: "fas fa-database", Order: 2},
		{Name: "SQLite", Category: models.SkillDatabase, Level: 75, IconClass: "fas fa-database", Order: 3},

		{Name: "Git", Category: models.SkillTool, Level: 85, IconClass: "fab fa-git-alt", Order: 1},
		{Name: "Visual Studio", Category: models.SkillTool, Level: 90, IconClass: "fas fa-code", Order: 2},
		{Name: "VS Code", Category: models.SkillTool, Level: 88, IconClass: "fas fa-code", Order: 3},
		{Name: "Docker", Category: models.SkillTool, Level: 70, IconClass: "fab fa-docker", Order: 4},
		{Name: "Linux", Category: models.SkillTool, Level: 75, IconClass: "fab fa-linux", Order: 5},

		{Name: "Team Leadership", Category: models.SkillSoft, Level: 85, IconClass: "fas fa-users", Order: 1},
		{Name: "Project Management", Category: models.SkillSoft, Level: 80, IconClass: "fas fa-project-diagram", Order: 2},
		{Name: "Problem Solving", Category: models.SkillSoft, Level: 90, IconClass: "fas fa-lightbulb", Order: 3},
		{Name: "Communication", Category: models.SkillSoft, Level: 85, IconClass: "fas fa-comments", Order: 4},
	}
	for i := range entries {
		err := db.Where(models.Skill{Name: entries[i].Name, Category: entries[i].Category}).
			FirstOrCreate(&entries[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func projects(db *gorm.DB) error {
	entries := []models.Project{
		{
			Title:            "E-Commerce Platform",
			Slug:             "e-commerce-platform",
			Category:         models.ProjectWeb,
			Status:           models.StatusCompleted,
			ShortDescription: "Modern e-commerce platform built with Django and React.",
			Description:      "A comprehensive e-commerce platform with a Django REST Framework backend and a React frontend.\n\nDesigned around a user-friendly shopping experience with responsive layout, secure payment integration and a full admin panel.",
			Technologies:     "Django, React, PostgreSQL, Redis, Docker",
			Features:         "User registration and login\nProduct catalog management\nCart and order flow\nPayment integration\nAdmin panel\nResponsive design",
			IsFeatured:       true,
			Order:            1,
		},
		{
			Title:            "Inventory Management System",
			Slug:             "inventory-management-system",
			Category:         models.ProjectDesktop,
			Status:           models.StatusCompleted,
			ShortDescription: "Comprehensive stock tracking and management application built with C# .NET.",
			Description:      "A desktop inventory application built with WPF.\n\nAimed at small and mid-size businesses, it combines stock tracking, sales workflows and reporting in one tool.",
			Technologies:     "C# .NET, WPF, MSSQL, Entity Framework",
			Features:         "Product definitions and categorization\nStock in/out operations\nSales workflows\nReporting\nUser authorization",
			IsFeatured:       true,
			Order:            2,
		},
		{
			Title:            "Personal Portfolio Site",
			Slug:             "personal-portfolio-site",
			Category:         models.ProjectWebsite,
			Status:           models.StatusCompleted,
			ShortDescription: "Dynamic portfolio site with fully managed content.",
			Description:      "A personal portfolio site whose content is managed entirely through the admin surface.\n\nIncludes custom Three.js animations on the landing page.",
			Technologies:     "Go, Three.js, HTML5, CSS3, JavaScript",
			Features:         "Dynamic content management\nAdmin integration\n3D animations\nResponsive design\nSEO optimization\nContact form",
			IsFeatured:       true,
			Order:            3,
		},
	}
	for i := range entries {
		err := db.Where(models.Project{Slug: entries[i].Slug}).
			FirstOrCreate(&entries[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func certificates(db *gorm.DB) error {
	entries := []models.Certificate{
		{
			Name:         "Vektorel Academy .NET Software Expertise Certificate",
			Organization: "Vektorel Academy",
			DateReceived: date(2021, time.December, 15),
			Description:  "Comprehensive training and certification covering C#, MVC, .NET Framework, SQL, HTML, CSS and JavaScript.",
			Order:        1,
		},
		{
			Name:         "Python Django Certification",
			Organization: "Online Course Platform",
			DateReceived: date(2022, time.June, 10),
			Description:  "Specialization certificate in web development with the Django framework.",
			Order:        2,
		},
		{
			Name:         "React.js Developer Certification",
			Organization: "Frontend Masters",
			DateReceived: date(2023, time.March, 20),
			Description:  "Certificate in modern React.js development techniques and best practices.",
			Order:        3,
		},
	}
	for i := range entries {
		err := db.Where(models.Certificate{Name: entries[i].Name, Organization: entries[i].Organization}).
			FirstOrCreate(&entries[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
