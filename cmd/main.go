package main

import (
    "log"

    "github.com/Rameshwarsp7900/non-veg/config"
    "github.com/Rameshwarsp7900/non-veg/routes"
    "github.com/Rameshwarsp7900/non-veg/services"
)

func main() {
    config.InitDB()

    rt := services.NewRealtimeHub()
    services.InitChangeDeps(rt)

    seedCron, err := services.StartSeedScheduler()
    if err != nil {
        log.Fatalf("Failed to start seed scheduler: %v", err)
    }
    defer seedCron.Stop()

    r := routes.SetupRouter(rt)
    r.Run(":8080")
}
