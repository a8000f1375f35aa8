package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bug-arena/internal/engine/battle"
	"github.com/KirkDiggler/bug-arena/internal/entities"
	"github.com/KirkDiggler/bug-arena/internal/errors"
	"github.com/KirkDiggler/bug-arena/internal/orchestrators/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := startApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	r := &repl{svc: a.service, playerID: a.playerID, out: cmd.OutOrStdout()}
	return r.run(cmd.Context(), os.Stdin)
}

const helpText = `Commands:
  search                 look for bugs nearby
  catch <n>              try to catch bug n from the last search
  release <id>           release a bug for points
  level <id>             spend points to level a bug
  upgrade <kind>         buy catch_chance, rare_luck or creature_strength
  opponent               show the current opponent
  quick <id>             fight the opponent in one roll
  battle <id>            start a turn based battle
  attack|defend|speed    act in the current battle
  abandon                leave the current battle
  status                 show progress and collection
  reset                  start over
  quit                   leave the game`

// repl reads one command per line and prints what the game returns
type repl struct {
	svc      game.Service
	playerID string
	out      io.Writer
}

func (r *repl) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(r.out, "Welcome to the bug arena! Type 'help' for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if quit := r.exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// exec runs one line and reports whether the player asked to quit. Game
// errors are printed, never returned.
func (r *repl) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return true
	case "help", "?":
		fmt.Fprintln(r.out, helpText)
	case "status":
		err = r.status(ctx)
	case "search":
		err = r.search(ctx)
	case "catch":
		err = r.catch(ctx, args)
	case "release":
		err = r.withID(args, func(id string) error { return r.release(ctx, id) })
	case "level":
		err = r.withID(args, func(id string) error { return r.levelUp(ctx, id) })
	case "upgrade":
		err = r.withID(args, func(kind string) error { return r.upgrade(ctx, kind) })
	case "opponent":
		err = r.opponent(ctx)
	case "quick":
		err = r.withID(args, func(id string) error { return r.quick(ctx, id) })
	case "battle":
		err = r.withID(args, func(id string) error { return r.startBattle(ctx, id) })
	case "abandon":
		err = r.abandon(ctx)
	case "reset":
		err = r.reset(ctx)
	default:
		action, parseErr := battle.ParseAction(cmd)
		if parseErr != nil {
			fmt.Fprintf(r.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
			return false
		}
		err = r.turn(ctx, action)
	}

	if err != nil {
		printError(r.out, err)
	}
	return false
}

func (r *repl) withID(args []string, fn func(string) error) error {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "That command takes exactly one argument.")
		return nil
	}
	return fn(args[0])
}

func (r *repl) status(ctx context.Context) error {
	out, err := r.svc.GetProgress(ctx, &game.GetProgressInput{PlayerID: r.playerID})
	if err != nil {
		return err
	}
	printProgress(r.out, out)
	return nil
}

func (r *repl) search(ctx context.Context) error {
	out, err := r.svc.Search(ctx, &game.SearchInput{PlayerID: r.playerID})
	if out != nil {
		fmt.Fprintln(r.out, "You spot some bugs:")
		printCandidates(r.out, out.Candidates)
	}
	return err
}

func (r *repl) catch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: catch <n>")
		return nil
	}
	n, convErr := strconv.Atoi(args[0])
	if convErr != nil {
		fmt.Fprintf(r.out, "%q is not a slot number\n", args[0])
		return nil
	}

	out, err := r.svc.Catch(ctx, &game.CatchInput{PlayerID: r.playerID, Slot: n - 1})
	if errors.IsInvalidArgument(err) {
		// the service counts slots from 0, the prompt from 1
		if slots, ok := errors.GetMeta(err)["slots"].(int); ok {
			fmt.Fprintf(r.out, "Pick a slot between 1 and %d\n", slots)
			return nil
		}
	}
	if out != nil {
		if out.Success {
			fmt.Fprintf(r.out, "Caught %s! (rolled %d under %d%%)\n", out.Creature.Name, out.Roll, out.CatchRate)
			printCreature(r.out, out.Creature)
		} else {
			fmt.Fprintf(r.out, "%s got away! (rolled %d, needed under %d)\n", out.FledName, out.Roll, out.CatchRate)
		}
		if out.Remaining == 0 {
			fmt.Fprintln(r.out, "No bugs left here. Search again.")
		}
	}
	return err
}

func (r *repl) release(ctx context.Context, id string) error {
	out, err := r.svc.Release(ctx, &game.ReleaseInput{PlayerID: r.playerID, CreatureID: id})
	if out != nil {
		fmt.Fprintf(r.out, "Released %s for %d points (now %d)\n", out.Released.Name, out.PointsEarned, out.Progression.Points)
	}
	return err
}

func (r *repl) levelUp(ctx context.Context, id string) error {
	out, err := r.svc.LevelUp(ctx, &game.LevelUpInput{PlayerID: r.playerID, CreatureID: id})
	if out != nil {
		fmt.Fprintf(r.out, "%s reached level %d for %d points\n", out.Creature.Name, out.Creature.Level, out.Cost)
		printCreature(r.out, out.Creature)
	}
	return err
}

func (r *repl) upgrade(ctx context.Context, kind string) error {
	out, err := r.svc.PurchaseUpgrade(ctx, &game.PurchaseUpgradeInput{
		PlayerID: r.playerID,
		Kind:     entities.UpgradeKind(kind),
	})
	if out != nil {
		fmt.Fprintf(r.out, "%s is now level %d (%d trophies left)\n", out.Kind, out.Level, out.Progression.Trophies)
	}
	return err
}

func (r *repl) opponent(ctx context.Context) error {
	out, err := r.svc.GetOpponent(ctx, &game.GetOpponentInput{PlayerID: r.playerID})
	if err != nil {
		return err
	}
	printOpponent(r.out, out.Opponent)
	return nil
}

func (r *repl) quick(ctx context.Context, id string) error {
	out, err := r.svc.QuickBattle(ctx, &game.QuickBattleInput{PlayerID: r.playerID, CreatureID: id})
	if out != nil {
		printOpponent(r.out, out.Opponent)
		fmt.Fprintf(r.out, "Your power %.1f vs %.1f\n", out.Result.PlayerPower, out.Result.NPCPower)
		if out.Result.PlayerWon {
			printRewards(r.out, out.Rewards)
		} else {
			fmt.Fprintf(r.out, "Defeat by %d. Train up and try again.\n", out.Result.Damage)
		}
	}
	return err
}

func (r *repl) startBattle(ctx context.Context, id string) error {
	out, err := r.svc.StartBattle(ctx, &game.StartBattleInput{PlayerID: r.playerID, CreatureID: id})
	if err != nil {
		return err
	}
	printOpponent(r.out, out.Battle.Opponent)
	printBattle(r.out, out.Battle)
	fmt.Fprintln(r.out, "Choose attack, defend or speed.")
	return nil
}

func (r *repl) turn(ctx context.Context, action battle.Action) error {
	out, err := r.svc.TakeTurn(ctx, &game.TakeTurnInput{PlayerID: r.playerID, Action: action})
	if out == nil {
		return err
	}

	fmt.Fprintf(r.out, "You %s, they %s. %s\n", out.Turn.PlayerAction, out.Turn.OpponentAction, out.Turn.Result)
	if out.Outcome == nil {
		printBattle(r.out, out.Battle)
		return err
	}
	if out.Outcome.Winner == battle.SidePlayer {
		printRewards(r.out, out.Rewards)
	} else {
		fmt.Fprintln(r.out, "Your bug fainted. Defeat!")
	}
	return err
}

func (r *repl) abandon(ctx context.Context) error {
	out, err := r.svc.AbandonBattle(ctx, &game.AbandonBattleInput{PlayerID: r.playerID})
	if err != nil {
		return err
	}
	if out.Abandoned {
		fmt.Fprintln(r.out, "You fled the battle.")
	} else {
		fmt.Fprintln(r.out, "You are not in a battle.")
	}
	return nil
}

func (r *repl) reset(ctx context.Context) error {
	out, err := r.svc.Reset(ctx, &game.ResetInput{PlayerID: r.playerID})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Game reset. %d bugs released back to the wild.\n", out.CreaturesRemoved)
	return nil
}
