package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nominasur/turnos/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Hernández",
	"Pérez", "Sánchez", "Ramírez", "Torres", "Flores", "Rivera",
	"Gómez", "Díaz", "Vargas", "Castro", "Ortiz", "Morales", "Rojas", "Mendoza",
}
var commonGivenNames = []string{
	"Juan", "Carlos", "José", "Luis", "Andrés", "Miguel", "Jorge", "Diego",
	"María", "Ana", "Laura", "Carmen", "Sofía", "Valentina", "Camila", "Isabel",
	"Santiago", "Daniel", "Felipe", "Mateo", "Paula", "Juliana", "Natalia", "Sara",
}

func GenerateRandomFullName() string {
	given := commonGivenNames[rand.Intn(len(commonGivenNames))]
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	return given + " " + surname
}

var roles = []domain.Role{
	domain.RoleEmpleado,
	domain.RoleSupervisor,
	domain.RoleAdministrador,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// GenerateUsernameFromFullName derives an ASCII username like "jgarcia42"
// from a Spanish full name.
func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(accentFolder.Replace(strings.ToLower(fullName)))
	username := ""

	for i, part := range parts {
		if i < len(parts)-1 {
			username += part[:1]
			continue
		}
		username += part
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomEmployee(password string, emailDomainName string) (*domain.Employee, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		IsActive:     true,
	}

	return employee, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

// GenerateRandomShiftTemplate builds a Monday-to-Friday template with one
// daytime segment per day, occasionally adding a Saturday half shift.
func GenerateRandomShiftTemplate() *domain.ShiftTemplate {
	st := domain.ShiftTemplate{
		Name:        "Plantilla " + GenerateRandomID(3, 3),
		Description: "Plantilla generada " + GenerateRandomID(10, 5),
	}

	startHour := rand.Intn(4) + 6  // 06:00 ~ 09:00
	shiftHours := rand.Intn(3) + 6 // 6 ~ 8 horas

	for day := int32(1); day <= 5; day++ {
		st.Segments = append(st.Segments, domain.ShiftTemplateSegment{
			DayOfWeek: day,
			StartTime: fmt.Sprintf("%02d:00:00", startHour),
			EndTime:   fmt.Sprintf("%02d:00:00", startHour+shiftHours),
		})
	}

	if rand.Intn(2) == 0 {
		st.Segments = append(st.Segments, domain.ShiftTemplateSegment{
			DayOfWeek: 6,
			StartTime: fmt.Sprintf("%02d:00:00", startHour),
			EndTime:   fmt.Sprintf("%02d:00:00", startHour+shiftHours/2),
		})
	}

	return &st
}
