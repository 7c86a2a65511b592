package services

import (
	"context"
	"time"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
)

const (
	homeFeaturedSkills   = 6
	homeFeaturedProjects = 3
	aboutRecentCerts     = 6
	detailOtherProjects  = 3
)

// PagesService assembles the exact context each public page needs.
type PagesService interface {
	HomePage(ctx context.Context) (*HomeContext, error)
	AboutPage(ctx context.Context) (*AboutContext, error)
	SkillsPage(ctx context.Context) (*SkillsContext, error)
	// ProjectsPage filters by category; "all" or empty means no filter. An
	// unrecognized code is applied literally and yields an empty list.
	ProjectsPage(ctx context.Context, category string) (*ProjectsContext, error)
	ProjectDetail(ctx context.Context, slug string) (*ProjectDetailContext, error)
	ContactPage(ctx context.Context) (*SiteContext, error)
}

// SiteContext is shared by every page. Both singletons may be absent; pages
// degrade to empty rendering rather than failing.
type SiteContext struct {
	PersonalInfo *PersonalInfoView    `json:"personal_info"`
	SiteSettings *models.SiteSettings `json:"site_settings"`
}

// PersonalInfoView augments the stored record with derived display fields.
type PersonalInfoView struct {
	models.PersonalInfo
	Age int `json:"age"`
}

type HomeContext struct {
	SiteContext
	FeaturedSkills   []models.Skill  `json:"featured_skills"`
	FeaturedProjects []ProjectView   `json:"featured_projects"`
	LatestExperience *ExperienceView `json:"latest_experience"`
}

type AboutContext struct {
	SiteContext
	Educations   []EducationView      `json:"educations"`
	Experiences  []ExperienceView     `json:"experiences"`
	Certificates []models.Certificate `json:"certificates"`
}

// SkillGroup is one of the five fixed category groups on the skills page.
type SkillGroup struct {
	Category models.SkillCategory `json:"category"`
	Skills   []models.Skill       `json:"skills"`
}

type SkillsContext struct {
	SiteContext
	Groups []SkillGroup `json:"groups"`
}

type ProjectsContext struct {
	SiteContext
	Projects        []ProjectView                    `json:"projects"`
	Categories      []models.ProjectCategory         `json:"categories"`
	CategoryCounts  map[models.ProjectCategory]int64 `json:"category_counts"`
	CurrentCategory string                           `json:"current_category"`
}

type ProjectDetailContext struct {
	SiteContext
	Project       ProjectView   `json:"project"`
	OtherProjects []ProjectView `json:"other_projects"`
}

// ProjectView exposes the delimited text fields as parsed sequences.
type ProjectView struct {
	models.Project
	TechList    []string `json:"tech_list"`
	FeatureList []string `json:"feature_list"`
}

// EducationView adds the rendered study period.
type EducationView struct {
	models.Education
	YearsDisplay string `json:"years_display"`
}

// ExperienceView adds the rendered employment period.
type ExperienceView struct {
	models.Experience
	YearsDisplay string `json:"years_display"`
}

type pagesService struct {
	personalRepo   repository.PersonalInfoRepository
	settingsRepo   repository.SiteSettingsRepository
	educationRepo  repository.EducationRepository
	experienceRepo repository.ExperienceRepository
	skillRepo      repository.SkillRepository
	projectRepo    repository.ProjectRepository
	certRepo       repository.CertificateRepository
}

func NewPagesService(
	personalRepo repository.PersonalInfoRepository,
	settingsRepo repository.SiteSettingsRepository,
	educationRepo repository.EducationRepository,
	experienceRepo repository.ExperienceRepository,
	skillRepo repository.SkillRepository,
	projectRepo repository.ProjectRepository,
	certRepo repository.CertificateRepository,
) PagesService {
	return &pagesService{
		personalRepo:   personalRepo,
		settingsRepo:   settingsRepo,
		educationRepo:  educationRepo,
		experienceRepo: experienceRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		certRepo:       certRepo,
	}
}

var _ PagesService = (*pagesService)(nil)

func (s *pagesService) siteContext(ctx context.Context) (SiteContext, error) {
	info, err := s.personalRepo.Get(ctx)
	if err != nil {
		return SiteContext{}, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return SiteContext{}, err
	}
	sc := SiteContext{SiteSettings: settings}
	if info != nil {
		sc.PersonalInfo = &PersonalInfoView{PersonalInfo: *info, Age: info.Age(time.Now())}
	}
	return sc, nil
}

func (s *pagesService) HomePage(ctx context.Context) (*HomeContext, error) {
	sc, err := s.siteContext(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.ListFeatured(ctx, homeFeaturedSkills)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListFeatured(ctx, homeFeaturedProjects)
	if err != nil {
		return nil, err
	}
	latest, err := s.experienceRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}

	out := &HomeContext{
		SiteContext:      sc,
		FeaturedSkills:   skills,
		FeaturedProjects: projectViews(projects),
	}
	if latest != nil {
		v := experienceView(*latest)
		out.LatestExperience = &v
	}
	return out, nil
}

func (s *pagesService) AboutPage(ctx context.Context) (*AboutContext, error) {
	sc, err := s.siteContext(ctx)
	if err != nil {
		return nil, err
	}

	educations, err := s.educationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	experiences, err := s.experienceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	certs, err := s.certRepo.ListRecent(ctx, aboutRecentCerts)
	if err != nil {
		return nil, err
	}

	out := &AboutContext{SiteContext: sc, Certificates: certs}
	out.Educations = make([]EducationView, 0, len(educations))
	for _, e := range educations {
		out.Educations = append(out.Educations, EducationView{Education: e, YearsDisplay: e.YearsDisplay()})
	}
	out.Experiences = make([]ExperienceView, 0, len(experiences))
	for _, e := range experiences {
		out.Experiences = append(out.Experiences, experienceView(e))
	}
	return out, nil
}

func (s *pagesService) SkillsPage(ctx context.Context) (*SkillsContext, error) {
	sc, err := s.siteContext(ctx)
	if err != nil {
		return nil, err
	}

	out := &SkillsContext{SiteContext: sc}
	for _, category := range models.SkillCategories() {
		skills, err := s.skillRepo.ListByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		if skills == nil {
			skills = []models.Skill{}
		}
		out.Groups = append(out.Groups, SkillGroup{Category: category, Skills: skills})
	}
	return out, nil
}

func (s *pagesService) ProjectsPage(ctx context.Context, category string) (*ProjectsContext, error) {
	sc, err := s.siteContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := category
	if filter == "all" {
		filter = ""
	}
	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts, err := s.projectRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	current := category
	if current == "" {
		current = "all"
	}
	return &ProjectsContext{
		SiteContext:     sc,
		Projects:        projectViews(projects),
		Categories:      models.ProjectCategories(),
		CategoryCounts:  counts,
		CurrentCategory: current,
	}, nil
}

func (s *pagesService) ProjectDetail(ctx context.Context, slug string) (*ProjectDetailContext, error) {
	sc, err := s.siteContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	others, err := s.projectRepo.ListOthers(ctx, slug, detailOtherProjects)
	if err != nil {
		return nil, err
	}

	return &ProjectDetailContext{
		SiteContext:   sc,
		Project:       projectView(*project),
		OtherProjects: projectViews(others),
	}, nil
}

func (s *pagesService) ContactPage(ctx context.Context) (*SiteContext, error) {
	sc, err := s.siteContext(ctx)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func projectView(p models.Project) ProjectView {
	return ProjectView{Project: p, TechList: p.TechList(), FeatureList: p.FeatureList()}
}

func projectViews(projects []models.Project) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectView(p))
	}
	return out
}

func experienceView(e models.Experience) ExperienceView {
	return ExperienceView{Experience: e, YearsDisplay: e.YearsDisplay()}
}
