package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstation/workstation-api/internal/domain"
)

func validOfficeCommand() *domain.CreateOfficeCommand {
	return &domain.CreateOfficeCommand{
		Location:    "Lima-01",
		Description: "Downtown office",
		ImageURL:    "https://cdn.example.com/office.jpg",
		Capacity:    10,
		CostPerDay:  50,
		Available:   true,
		Services: []domain.OfficeServiceCommand{
			{Name: "Wifi", Description: "Fiber connection", Cost: 20},
		},
	}
}

func TestOfficeCommandValidator_Valid(t *testing.T) {
	t.Parallel()
	v := NewOfficeCommandValidator()

	errs := v.Validate(validOfficeCommand())
	assert.Nil(t, errs)
}

func TestOfficeCommandValidator_FieldRules(t *testing.T) {
	t.Parallel()
	v := NewOfficeCommandValidator()

	tests := []struct {
		name      string
		mutate    func(cmd *domain.CreateOfficeCommand)
		wantField string
		wantMsg   string
	}{
		{
			name:      "empty location",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Location = "" },
			wantField: "Location",
			wantMsg:   "The office location must be listed.",
		},
		{
			name:      "location too long",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Location = strings.Repeat("x", 201) },
			wantField: "Location",
			wantMsg:   "Location can't exceed 200 characters.",
		},
		{
			name:      "zero capacity",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Capacity = 0 },
			wantField: "Capacity",
			wantMsg:   "Capacity must be more than 0.",
		},
		{
			name:      "capacity over limit",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Capacity = 1001 },
			wantField: "Capacity",
			wantMsg:   "Capacity can't be more than 1000.",
		},
		{
			name:      "cost per day over limit",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.CostPerDay = 100000; cmd.Services = manyServices(5) },
			wantField: "CostPerDay",
			wantMsg:   "Cost per day is too much!",
		},
		{
			name:      "empty description",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Description = "" },
			wantField: "Description",
			wantMsg:   "La descripción es obligatoria.",
		},
		{
			name:      "description too long",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Description = strings.Repeat("x", 501) },
			wantField: "Description",
			wantMsg:   "La descripción no debe exceder los 500 caracteres.",
		},
		{
			name:      "empty image url",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.ImageURL = "" },
			wantField: "ImageURL",
			wantMsg:   "La URL de la imagen no puede estar vacía.",
		},
		{
			name:      "relative image url",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.ImageURL = "/images/office.jpg" },
			wantField: "ImageURL",
			wantMsg:   "La URL debe ser válida y apuntar a una imagen (.jpg, .jpeg, .png o .webp).",
		},
		{
			name:      "image url with bad extension",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.ImageURL = "https://cdn.example.com/office.gif" },
			wantField: "ImageURL",
			wantMsg:   "La URL debe ser válida y apuntar a una imagen (.jpg, .jpeg, .png o .webp).",
		},
		{
			name:      "nil services",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Services = nil },
			wantField: "Services",
			wantMsg:   "Define a list of services.",
		},
		{
			name:      "empty services",
			mutate:    func(cmd *domain.CreateOfficeCommand) { cmd.Services = []domain.OfficeServiceCommand{} },
			wantField: "Services",
			wantMsg:   "Include at least one service.",
		},
		{
			name: "service name missing",
			mutate: func(cmd *domain.CreateOfficeCommand) {
				cmd.Services[0].Name = ""
			},
			wantField: "Services[0].Name",
			wantMsg:   "Name of the service is obligatory.",
		},
		{
			name: "service cost below bound",
			mutate: func(cmd *domain.CreateOfficeCommand) {
				cmd.Services[0].Cost = 19
			},
			wantField: "Services[0].Cost",
			wantMsg:   "The cost must be at least 20.",
		},
		{
			name: "service cost above bound",
			mutate: func(cmd *domain.CreateOfficeCommand) {
				cmd.Services[0].Cost = 101
			},
			wantField: "Services[0].Cost",
			wantMsg:   "The cost can't exceed 100.",
		},
		{
			name: "service description too long",
			mutate: func(cmd *domain.CreateOfficeCommand) {
				cmd.Services[0].Description = strings.Repeat("x", 251)
			},
			wantField: "Services[0].Description",
			wantMsg:   "The description can't exceed 250 characters.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validOfficeCommand()
			tc.mutate(cmd)

			errs := v.Validate(cmd)
			require.NotNil(t, errs)
			require.Contains(t, errs, tc.wantField)
			assert.Contains(t, errs[tc.wantField], tc.wantMsg)
		})
	}
}

func TestOfficeCommandValidator_CostCaps(t *testing.T) {
	t.Parallel()
	v := NewOfficeCommandValidator()

	t.Run("cost 50 with one service passes the low cap", func(t *testing.T) {
		cmd := validOfficeCommand()
		cmd.CostPerDay = 50
		assert.Nil(t, v.Validate(cmd))
	})

	t.Run("cost 60 with one service exceeds the low cap", func(t *testing.T) {
		cmd := validOfficeCommand()
		cmd.CostPerDay = 60

		errs := v.Validate(cmd)
		require.NotNil(t, errs)
		require.Contains(t, errs, "CostPerDay")
		assert.Contains(t, errs["CostPerDay"],
			"The daily cost cannot exceed 54 when there are 2 or fewer services.")
	})

	t.Run("cost 90 with three services has no cap", func(t *testing.T) {
		cmd := validOfficeCommand()
		cmd.CostPerDay = 90
		cmd.Services = manyServices(3)
		assert.Nil(t, v.Validate(cmd))
	})

	t.Run("cost 90 with four services has no cap", func(t *testing.T) {
		cmd := validOfficeCommand()
		cmd.CostPerDay = 90
		cmd.Services = manyServices(4)
		assert.Nil(t, v.Validate(cmd))
	})

	t.Run("cost 81 with five services exceeds the high cap", func(t *testing.T) {
		cmd := validOfficeCommand()
		cmd.CostPerDay = 81
		cmd.Services = manyServices(5)

		errs := v.Validate(cmd)
		require.NotNil(t, errs)
		require.Contains(t, errs, "CostPerDay")
		assert.Contains(t, errs["CostPerDay"],
			"The daily cost cannot exceed 80 when there are more than 4 services.")
	})

	t.Run("cost 80 with five services passes the high cap", func(t *testing.T) {
		cmd := validOfficeCommand()
		cmd.CostPerDay = 80
		cmd.Services = manyServices(5)
		assert.Nil(t, v.Validate(cmd))
	})
}

func TestOfficeCommandValidator_AccumulatesAllFailures(t *testing.T) {
	t.Parallel()
	v := NewOfficeCommandValidator()

	cmd := &domain.CreateOfficeCommand{
		Location:    "",
		Description: "",
		ImageURL:    "not-a-url",
		Capacity:    0,
		CostPerDay:  60,
		Services:    []domain.OfficeServiceCommand{{Name: "", Cost: 5}},
	}

	errs := v.Validate(cmd)
	require.NotNil(t, errs)

	// Every broken field is reported, including the cross-field cap.
	assert.Contains(t, errs, "Location")
	assert.Contains(t, errs, "Description")
	assert.Contains(t, errs, "ImageURL")
	assert.Contains(t, errs, "Capacity")
	assert.Contains(t, errs, "CostPerDay")
	assert.Contains(t, errs, "Services[0].Name")
	assert.Contains(t, errs, "Services[0].Cost")
}

func manyServices(n int) []domain.OfficeServiceCommand {
	names := []string{"Wifi", "Parking", "Coffee", "Printer", "Lockers", "Reception"}
	services := make([]domain.OfficeServiceCommand, n)
	for i := 0; i < n; i++ {
		services[i] = domain.OfficeServiceCommand{Name: names[i%len(names)], Cost: 20}
	}
	return services
}
