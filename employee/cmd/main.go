package main

import (
	"fmt"

	"github.com/go-leo/employee-equality/employee"
	"go.uber.org/zap"
)

// Two employees with the same id are equal even when every other field differs.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	e1 := mustNew(logger, 101, "Sarah", "Wilson")
	e2 := mustNew(logger, 101, "Michael", "Brown")
	e3 := mustNew(logger, 102, "Emma", "Davis")

	fmt.Println(e1)
	fmt.Println(e2)
	fmt.Println(e3)
	fmt.Println()

	fmt.Printf("e1 == e2 : %t\n", employee.Equal(e1, e2))
	fmt.Printf("e1 != e3 : %t\n", employee.NotEqual(e1, e3))
}

func mustNew(logger *zap.Logger, id employee.ID, firstName string, lastName string) *employee.Employee {
	e, err := employee.New(id, firstName, lastName)
	if err != nil {
		logger.Fatal("create employee failed",
			zap.Int("id", int(id)),
			zap.String("first_name", firstName),
			zap.String("last_name", lastName),
			zap.Error(err),
		)
	}
	return e
}
